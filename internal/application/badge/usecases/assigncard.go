package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type AssignCardCommand struct {
	CardID     string
	AssignedBy string
}

type AssignCardUseCase struct {
	cardRepo badge.Repository
	txMgr    db.Runner
	logger   logger.Interface
}

func NewAssignCardUseCase(cardRepo badge.Repository, txMgr db.Runner, logger logger.Interface) *AssignCardUseCase {
	return &AssignCardUseCase{
		cardRepo: cardRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute moves a card to assigned. Assigning an already assigned card
// succeeds without writing.
func (uc *AssignCardUseCase) Execute(ctx context.Context, cmd AssignCardCommand) (*dto.PendingCardDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing assign card use case",
		"card_id", cmd.CardID,
		"assigned_by", cmd.AssignedBy)

	var assigned *badge.PendingCard
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		card, err := uc.cardRepo.GetByCardID(txCtx, cmd.CardID)
		if err != nil {
			return err
		}
		if card == nil {
			return errors.NewNotFoundError("Card not found")
		}

		assigned = card
		if !card.Assign() {
			log.Infow("card already assigned", "card_id", cmd.CardID)
			return nil
		}
		return uc.cardRepo.Update(txCtx, card)
	})
	if err != nil {
		return nil, storeError(log, err, "failed to assign card")
	}

	log.Infow("card assigned successfully",
		"card_id", assigned.CardID(),
		"assigned_by", cmd.AssignedBy)

	return dto.ToPendingCardDTO(assigned), nil
}

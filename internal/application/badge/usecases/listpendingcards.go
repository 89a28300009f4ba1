package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type ListPendingCardsUseCase struct {
	cardRepo badge.Repository
	logger   logger.Interface
}

func NewListPendingCardsUseCase(cardRepo badge.Repository, logger logger.Interface) *ListPendingCardsUseCase {
	return &ListPendingCardsUseCase{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// Execute returns cards awaiting assignment, most recently scanned first.
func (uc *ListPendingCardsUseCase) Execute(ctx context.Context) ([]*dto.PendingCardDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Debugw("executing list pending cards use case")

	cards, err := uc.cardRepo.ListByStatus(ctx, vo.StatusPending)
	if err != nil {
		return nil, storeError(log, err, "failed to list pending cards")
	}

	log.Infow("pending cards listed", "count", len(cards))
	return dto.ToPendingCardDTOs(cards), nil
}

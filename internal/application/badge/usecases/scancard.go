package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type ScanCardCommand struct {
	CardID string
	// ScannedBy is the client that presented the token, kept for the audit log.
	ScannedBy string
}

type ScanCardUseCase struct {
	cardRepo badge.Repository
	txMgr    db.Runner
	logger   logger.Interface
}

func NewScanCardUseCase(cardRepo badge.Repository, txMgr db.Runner, logger logger.Interface) *ScanCardUseCase {
	return &ScanCardUseCase{
		cardRepo: cardRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute registers a freshly scanned card as pending. Scanning a card that
// is already known fails with a conflict naming its current status.
func (uc *ScanCardUseCase) Execute(ctx context.Context, cmd ScanCardCommand) (*dto.ScanResultDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing scan card use case",
		"card_id", cmd.CardID,
		"scanned_by", cmd.ScannedBy)

	card, err := badge.NewPendingCard(cmd.CardID, time.Now())
	if err != nil {
		log.Warnw("invalid scan card command", "error", err)
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.cardRepo.Create(txCtx, card)
	})
	if errors.IsConflictError(err) {
		return nil, uc.alreadyRegistered(ctx, log, card.CardID())
	}
	if err != nil {
		return nil, storeError(log, err, "failed to register card")
	}

	log.Infow("card registered, awaiting admin assignment",
		"card_id", card.CardID(),
		"pending_card_id", card.ID())

	return &dto.ScanResultDTO{
		Success: true,
		Message: dto.ScanAcceptedMessage,
		CardID:  card.CardID(),
	}, nil
}

// alreadyRegistered runs after the failed insert rolled back, so the lookup
// sees the committed row that caused the collision.
func (uc *ScanCardUseCase) alreadyRegistered(ctx context.Context, log logger.Interface, cardID string) error {
	existing, err := uc.cardRepo.GetByCardID(ctx, cardID)
	if err != nil {
		return storeError(log, err, "failed to look up registered card")
	}

	status := "unknown"
	if existing != nil {
		status = existing.Status().String()
	}

	log.Warnw("card already registered", "card_id", cardID, "status", status)
	return errors.NewConflictError(fmt.Sprintf("Card already registered (status: %s)", status))
}

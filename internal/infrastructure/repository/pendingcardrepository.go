package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/mappers"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
)

var pendingCardConstraints = constraintMessages{
	duplicate:  "Card already registered",
	missingRef: "Invalid card reference",
}

type PendingCardRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PendingCardMapper
}

func NewPendingCardRepository(db *gorm.DB) badge.Repository {
	return &PendingCardRepositoryImpl{
		db:     db,
		mapper: mappers.NewPendingCardMapper(),
	}
}

func (r *PendingCardRepositoryImpl) Create(ctx context.Context, card *badge.PendingCard) error {
	model := r.mapper.ToModel(card)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return translateWriteError(err, "create pending card", pendingCardConstraints)
	}

	return card.SetID(model.ID)
}

func (r *PendingCardRepositoryImpl) GetByCardID(ctx context.Context, cardID string) (*badge.PendingCard, error) {
	var model models.PendingCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("card_id = ?", cardID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending card: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PendingCardRepositoryImpl) ListByStatus(ctx context.Context, status vo.CardStatus) ([]*badge.PendingCard, error) {
	var cardModels []*models.PendingCardModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("status = ?", status.String()).
		Order("scanned_at DESC").
		Order("id DESC").
		Find(&cardModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending cards: %w", err)
	}

	return r.mapper.ToEntities(cardModels)
}

func (r *PendingCardRepositoryImpl) Update(ctx context.Context, card *badge.PendingCard) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.PendingCardModel{}).
		Where("id = ?", card.ID()).
		Update("status", card.Status().String())
	if result.Error != nil {
		return fmt.Errorf("failed to update pending card: %w", result.Error)
	}
	return nil
}

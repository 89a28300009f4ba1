package mappers

import (
	"fmt"

	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
)

type PendingCardMapper interface {
	ToEntity(model *models.PendingCardModel) (*badge.PendingCard, error)
	ToModel(entity *badge.PendingCard) *models.PendingCardModel
	ToEntities(models []*models.PendingCardModel) ([]*badge.PendingCard, error)
}

type PendingCardMapperImpl struct{}

func NewPendingCardMapper() PendingCardMapper {
	return &PendingCardMapperImpl{}
}

func (m *PendingCardMapperImpl) ToEntity(model *models.PendingCardModel) (*badge.PendingCard, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := badge.ReconstructPendingCard(model.ID, model.CardID, model.ScannedAt, model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct pending card: %w", err)
	}
	return entity, nil
}

func (m *PendingCardMapperImpl) ToModel(entity *badge.PendingCard) *models.PendingCardModel {
	if entity == nil {
		return nil
	}

	return &models.PendingCardModel{
		ID:        entity.ID(),
		CardID:    entity.CardID(),
		ScannedAt: entity.ScannedAt(),
		Status:    entity.Status().String(),
	}
}

func (m *PendingCardMapperImpl) ToEntities(cardModels []*models.PendingCardModel) ([]*badge.PendingCard, error) {
	entities := make([]*badge.PendingCard, 0, len(cardModels))
	for _, model := range cardModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

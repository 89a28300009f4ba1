package mappers

import (
	"fmt"

	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
)

// LockerPermissionMapper handles the conversion between locker permission entities and persistence models.
type LockerPermissionMapper interface {
	ToEntity(model *models.LockerPermissionModel) (*permission.LockerPermission, error)
	ToModel(entity *permission.LockerPermission) *models.LockerPermissionModel
	ToEntities(models []*models.LockerPermissionModel) ([]*permission.LockerPermission, error)
}

type LockerPermissionMapperImpl struct{}

func NewLockerPermissionMapper() LockerPermissionMapper {
	return &LockerPermissionMapperImpl{}
}

func (m *LockerPermissionMapperImpl) ToEntity(model *models.LockerPermissionModel) (*permission.LockerPermission, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := permission.ReconstructLockerPermission(
		model.ID,
		model.RoleName,
		model.LockerID,
		permission.Access{
			CanView:   model.CanView,
			CanOpen:   model.CanOpen,
			CanEdit:   model.CanEdit,
			CanTake:   model.CanTake,
			CanManage: model.CanManage,
		},
		model.ValidUntil,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct locker permission: %w", err)
	}

	return entity, nil
}

func (m *LockerPermissionMapperImpl) ToModel(entity *permission.LockerPermission) *models.LockerPermissionModel {
	if entity == nil {
		return nil
	}

	access := entity.Access()
	return &models.LockerPermissionModel{
		ID:         entity.ID(),
		RoleName:   entity.RoleName(),
		LockerID:   entity.LockerID(),
		CanView:    access.CanView,
		CanOpen:    access.CanOpen,
		CanEdit:    access.CanEdit,
		CanTake:    access.CanTake,
		CanManage:  access.CanManage,
		ValidUntil: entity.ValidUntil(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *LockerPermissionMapperImpl) ToEntities(permissionModels []*models.LockerPermissionModel) ([]*permission.LockerPermission, error) {
	entities := make([]*permission.LockerPermission, 0, len(permissionModels))
	for _, model := range permissionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

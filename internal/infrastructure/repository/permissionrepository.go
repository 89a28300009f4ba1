package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/mappers"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
)

var permissionConstraints = constraintMessages{
	duplicate:  "A permission for this role and locker already exists.",
	missingRef: "Referenced locker does not exist",
}

type PermissionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LockerPermissionMapper
}

func NewPermissionRepository(db *gorm.DB) permission.Repository {
	return &PermissionRepositoryImpl{
		db:     db,
		mapper: mappers.NewLockerPermissionMapper(),
	}
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, perm *permission.LockerPermission) error {
	model := r.mapper.ToModel(perm)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return translateWriteError(err, "create permission", permissionConstraints)
	}

	return perm.SetID(model.ID)
}

func (r *PermissionRepositoryImpl) GetByID(ctx context.Context, id uint) (*permission.LockerPermission, error) {
	var model models.LockerPermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PermissionRepositoryImpl) List(ctx context.Context, skip, limit int) ([]*permission.LockerPermission, error) {
	var permModels []*models.LockerPermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.Page(skip, limit)).Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	return r.mapper.ToEntities(permModels)
}

func (r *PermissionRepositoryImpl) ListByLocker(ctx context.Context, lockerID uint) ([]*permission.LockerPermission, error) {
	var permModels []*models.LockerPermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("locker_id = ?", lockerID).Order("id ASC").Find(&permModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions for locker: %w", err)
	}

	return r.mapper.ToEntities(permModels)
}

func (r *PermissionRepositoryImpl) GetByRoleAndLocker(ctx context.Context, roleName string, lockerID uint) (*permission.LockerPermission, error) {
	var model models.LockerPermissionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("role_name = ? AND locker_id = ?", roleName, lockerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission by role and locker: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PermissionRepositoryImpl) Update(ctx context.Context, perm *permission.LockerPermission) error {
	access := perm.Access()
	tx := db.GetTxFromContext(ctx, r.db)

	// a map is used so false flags and a cleared expiry are written too
	result := tx.Model(&models.LockerPermissionModel{}).
		Where("id = ?", perm.ID()).
		Updates(map[string]interface{}{
			"role_name":   perm.RoleName(),
			"locker_id":   perm.LockerID(),
			"can_view":    access.CanView,
			"can_open":    access.CanOpen,
			"can_edit":    access.CanEdit,
			"can_take":    access.CanTake,
			"can_manage":  access.CanManage,
			"valid_until": perm.ValidUntil(),
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update permission", permissionConstraints)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *PermissionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.LockerPermissionModel{}, id).Error; err != nil {
		return translateDeleteError(err, "delete permission", "Permission")
	}
	return nil
}

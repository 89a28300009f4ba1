package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type ListLockerPermissionsUseCase struct {
	permissionRepo permission.Repository
	logger         logger.Interface
}

func NewListLockerPermissionsUseCase(permissionRepo permission.Repository, logger logger.Interface) *ListLockerPermissionsUseCase {
	return &ListLockerPermissionsUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// Execute returns every permission on the locker; an unknown locker yields an empty list.
func (uc *ListLockerPermissionsUseCase) Execute(ctx context.Context, lockerID uint) ([]*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Debugw("executing list locker permissions use case", "locker_id", lockerID)

	perms, err := uc.permissionRepo.ListByLocker(ctx, lockerID)
	if err != nil {
		return nil, storeError(log, err, "failed to list locker permissions")
	}

	return dto.ToPermissionDTOs(perms), nil
}

type GetRolePermissionQuery struct {
	RoleName string
	LockerID uint
}

type GetRolePermissionUseCase struct {
	permissionRepo permission.Repository
	logger         logger.Interface
}

func NewGetRolePermissionUseCase(permissionRepo permission.Repository, logger logger.Interface) *GetRolePermissionUseCase {
	return &GetRolePermissionUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

func (uc *GetRolePermissionUseCase) Execute(ctx context.Context, query GetRolePermissionQuery) (*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Debugw("executing get role permission use case",
		"role_name", query.RoleName,
		"locker_id", query.LockerID)

	perm, err := uc.permissionRepo.GetByRoleAndLocker(ctx, query.RoleName, query.LockerID)
	if err != nil {
		return nil, storeError(log, err, "failed to get role permission")
	}
	if perm == nil {
		log.Infow("no permission for role on locker",
			"role_name", query.RoleName,
			"locker_id", query.LockerID)
		return nil, errors.NewNotFoundError("Permission not found for this role and locker")
	}

	return dto.ToPermissionDTO(perm), nil
}

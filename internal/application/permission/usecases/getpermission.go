package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type GetPermissionUseCase struct {
	permissionRepo permission.Repository
	logger         logger.Interface
}

func NewGetPermissionUseCase(permissionRepo permission.Repository, logger logger.Interface) *GetPermissionUseCase {
	return &GetPermissionUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

func (uc *GetPermissionUseCase) Execute(ctx context.Context, permissionID uint) (*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Debugw("executing get permission use case", "permission_id", permissionID)

	perm, err := uc.permissionRepo.GetByID(ctx, permissionID)
	if err != nil {
		return nil, storeError(log, err, "failed to get permission")
	}
	if perm == nil {
		log.Warnw("permission not found", "permission_id", permissionID)
		return nil, errors.NewNotFoundError("Permission not found")
	}

	return dto.ToPermissionDTO(perm), nil
}

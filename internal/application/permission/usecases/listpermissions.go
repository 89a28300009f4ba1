package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type ListPermissionsQuery struct {
	Skip  int
	Limit int
}

type ListPermissionsUseCase struct {
	permissionRepo permission.Repository
	logger         logger.Interface
}

func NewListPermissionsUseCase(permissionRepo permission.Repository, logger logger.Interface) *ListPermissionsUseCase {
	return &ListPermissionsUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// Execute returns one page of permissions in insertion order.
func (uc *ListPermissionsUseCase) Execute(ctx context.Context, query ListPermissionsQuery) ([]*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Debugw("executing list permissions use case", "skip", query.Skip, "limit", query.Limit)

	perms, err := uc.permissionRepo.List(ctx, query.Skip, query.Limit)
	if err != nil {
		return nil, storeError(log, err, "failed to list permissions")
	}

	log.Debugw("permissions listed", "count", len(perms))
	return dto.ToPermissionDTOs(perms), nil
}

package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type DeletePermissionUseCase struct {
	permissionRepo permission.Repository
	txMgr          db.Runner
	logger         logger.Interface
}

func NewDeletePermissionUseCase(
	permissionRepo permission.Repository,
	txMgr db.Runner,
	logger logger.Interface,
) *DeletePermissionUseCase {
	return &DeletePermissionUseCase{
		permissionRepo: permissionRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute removes the permission and returns it as it was before deletion.
func (uc *DeletePermissionUseCase) Execute(ctx context.Context, permissionID uint) (*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing delete permission use case", "permission_id", permissionID)

	var deleted *permission.LockerPermission
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		perm, err := uc.permissionRepo.GetByID(txCtx, permissionID)
		if err != nil {
			return err
		}
		if perm == nil {
			return errors.NewNotFoundError("Permission not found")
		}

		if err := uc.permissionRepo.Delete(txCtx, permissionID); err != nil {
			return err
		}
		deleted = perm
		return nil
	})
	if err != nil {
		return nil, storeError(log, err, "failed to delete permission")
	}

	log.Infow("permission deleted successfully", "permission_id", permissionID)
	return dto.ToPermissionDTO(deleted), nil
}

package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type UpdatePermissionCommand struct {
	PermissionID uint
	Patch        permission.Patch
}

type UpdatePermissionUseCase struct {
	permissionRepo permission.Repository
	txMgr          db.Runner
	logger         logger.Interface
}

func NewUpdatePermissionUseCase(
	permissionRepo permission.Repository,
	txMgr db.Runner,
	logger logger.Interface,
) *UpdatePermissionUseCase {
	return &UpdatePermissionUseCase{
		permissionRepo: permissionRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute changes only the fields present in the patch.
func (uc *UpdatePermissionUseCase) Execute(ctx context.Context, cmd UpdatePermissionCommand) (*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing update permission use case", "permission_id", cmd.PermissionID)

	var updated *permission.LockerPermission
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		perm, err := uc.permissionRepo.GetByID(txCtx, cmd.PermissionID)
		if err != nil {
			return err
		}
		if perm == nil {
			return errors.NewNotFoundError("Permission not found")
		}

		if err := perm.ApplyPatch(cmd.Patch); err != nil {
			return err
		}

		if err := uc.permissionRepo.Update(txCtx, perm); err != nil {
			return err
		}
		updated = perm
		return nil
	})
	if err != nil {
		return nil, storeError(log, err, "failed to update permission")
	}

	log.Infow("permission updated successfully", "permission_id", updated.ID())
	return dto.ToPermissionDTO(updated), nil
}

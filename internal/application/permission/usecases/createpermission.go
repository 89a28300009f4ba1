package usecases

import (
	"context"
	"time"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type CreatePermissionCommand struct {
	RoleName   string
	LockerID   uint
	Access     permission.Access
	ValidUntil *string
}

type CreatePermissionUseCase struct {
	permissionRepo permission.Repository
	txMgr          db.Runner
	logger         logger.Interface
}

func NewCreatePermissionUseCase(
	permissionRepo permission.Repository,
	txMgr db.Runner,
	logger logger.Interface,
) *CreatePermissionUseCase {
	return &CreatePermissionUseCase{
		permissionRepo: permissionRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreatePermissionUseCase) Execute(ctx context.Context, cmd CreatePermissionCommand) (*dto.PermissionDTO, error) {
	log := uc.logger.WithContext(ctx)
	log.Infow("executing create permission use case",
		"role_name", cmd.RoleName,
		"locker_id", cmd.LockerID)

	perm, err := permission.NewLockerPermission(cmd.RoleName, cmd.LockerID, cmd.Access, cmd.ValidUntil, time.Now())
	if err != nil {
		log.Warnw("invalid create permission command", "error", err)
		return nil, err
	}

	// the unique (role, locker) index decides; no read-before-write
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.permissionRepo.Create(txCtx, perm)
	})
	if err != nil {
		return nil, storeError(log, err, "failed to create permission")
	}

	log.Infow("permission created successfully",
		"permission_id", perm.ID(),
		"role_name", perm.RoleName(),
		"locker_id", perm.LockerID())

	return dto.ToPermissionDTO(perm), nil
}

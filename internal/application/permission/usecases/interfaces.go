package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
)

type CreatePermissionExecutor interface {
	Execute(ctx context.Context, cmd CreatePermissionCommand) (*dto.PermissionDTO, error)
}

type GetPermissionExecutor interface {
	Execute(ctx context.Context, permissionID uint) (*dto.PermissionDTO, error)
}

type ListPermissionsExecutor interface {
	Execute(ctx context.Context, query ListPermissionsQuery) ([]*dto.PermissionDTO, error)
}

type ListLockerPermissionsExecutor interface {
	Execute(ctx context.Context, lockerID uint) ([]*dto.PermissionDTO, error)
}

type GetRolePermissionExecutor interface {
	Execute(ctx context.Context, query GetRolePermissionQuery) (*dto.PermissionDTO, error)
}

type UpdatePermissionExecutor interface {
	Execute(ctx context.Context, cmd UpdatePermissionCommand) (*dto.PermissionDTO, error)
}

type DeletePermissionExecutor interface {
	Execute(ctx context.Context, permissionID uint) (*dto.PermissionDTO, error)
}

var (
	_ CreatePermissionExecutor      = (*CreatePermissionUseCase)(nil)
	_ GetPermissionExecutor         = (*GetPermissionUseCase)(nil)
	_ ListPermissionsExecutor       = (*ListPermissionsUseCase)(nil)
	_ ListLockerPermissionsExecutor = (*ListLockerPermissionsUseCase)(nil)
	_ GetRolePermissionExecutor     = (*GetRolePermissionUseCase)(nil)
	_ UpdatePermissionExecutor      = (*UpdatePermissionUseCase)(nil)
	_ DeletePermissionExecutor      = (*DeletePermissionUseCase)(nil)
)

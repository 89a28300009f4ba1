package permission

import "context"

// Repository persists locker permissions. Lookups return (nil, nil) when
// nothing matches. Create and Update surface a (role, locker) collision as
// a conflict AppError rather than a raw store error.
type Repository interface {
	Create(ctx context.Context, permission *LockerPermission) error
	GetByID(ctx context.Context, id uint) (*LockerPermission, error)
	List(ctx context.Context, skip, limit int) ([]*LockerPermission, error)
	ListByLocker(ctx context.Context, lockerID uint) ([]*LockerPermission, error)
	GetByRoleAndLocker(ctx context.Context, roleName string, lockerID uint) (*LockerPermission, error)
	Update(ctx context.Context, permission *LockerPermission) error
	Delete(ctx context.Context, id uint) error
}

package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/domain/permission"
)

type mockPermissionRepository struct {
	CreateFunc             func(ctx context.Context, p *permission.LockerPermission) error
	GetByIDFunc            func(ctx context.Context, id uint) (*permission.LockerPermission, error)
	ListFunc               func(ctx context.Context, skip, limit int) ([]*permission.LockerPermission, error)
	ListByLockerFunc       func(ctx context.Context, lockerID uint) ([]*permission.LockerPermission, error)
	GetByRoleAndLockerFunc func(ctx context.Context, roleName string, lockerID uint) (*permission.LockerPermission, error)
	UpdateFunc             func(ctx context.Context, p *permission.LockerPermission) error
	DeleteFunc             func(ctx context.Context, id uint) error
}

func (m *mockPermissionRepository) Create(ctx context.Context, p *permission.LockerPermission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPermissionRepository) GetByID(ctx context.Context, id uint) (*permission.LockerPermission, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPermissionRepository) List(ctx context.Context, skip, limit int) ([]*permission.LockerPermission, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

func (m *mockPermissionRepository) ListByLocker(ctx context.Context, lockerID uint) ([]*permission.LockerPermission, error) {
	if m.ListByLockerFunc != nil {
		return m.ListByLockerFunc(ctx, lockerID)
	}
	return nil, nil
}

func (m *mockPermissionRepository) GetByRoleAndLocker(ctx context.Context, roleName string, lockerID uint) (*permission.LockerPermission, error) {
	if m.GetByRoleAndLockerFunc != nil {
		return m.GetByRoleAndLockerFunc(ctx, roleName, lockerID)
	}
	return nil, nil
}

func (m *mockPermissionRepository) Update(ctx context.Context, p *permission.LockerPermission) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPermissionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTxRunner runs fn inline and records how often a unit of work was opened.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
)

type mockRepository[T any] struct {
	CreateFunc  func(ctx context.Context, entity T) error
	GetByIDFunc func(ctx context.Context, id uint) (T, error)
	ListFunc    func(ctx context.Context, skip, limit int) ([]T, error)
	UpdateFunc  func(ctx context.Context, entity T) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockRepository[T]) Create(ctx context.Context, entity T) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entity)
	}
	return nil
}

func (m *mockRepository[T]) GetByID(ctx context.Context, id uint) (T, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	var zero T
	return zero, nil
}

func (m *mockRepository[T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

func (m *mockRepository[T]) Update(ctx context.Context, entity T) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entity)
	}
	return nil
}

func (m *mockRepository[T]) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockStockRepository struct {
	mockRepository[*inventory.Stock]
	ListByLockerFunc func(ctx context.Context, lockerID uint) ([]*inventory.Stock, error)
}

func (m *mockStockRepository) ListByLocker(ctx context.Context, lockerID uint) ([]*inventory.Stock, error) {
	if m.ListByLockerFunc != nil {
		return m.ListByLockerFunc(ctx, lockerID)
	}
	return nil, nil
}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
)

type mockCardRepository struct {
	CreateFunc       func(ctx context.Context, card *badge.PendingCard) error
	GetByCardIDFunc  func(ctx context.Context, cardID string) (*badge.PendingCard, error)
	ListByStatusFunc func(ctx context.Context, status vo.CardStatus) ([]*badge.PendingCard, error)
	UpdateFunc       func(ctx context.Context, card *badge.PendingCard) error
}

func (m *mockCardRepository) Create(ctx context.Context, card *badge.PendingCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *mockCardRepository) GetByCardID(ctx context.Context, cardID string) (*badge.PendingCard, error) {
	if m.GetByCardIDFunc != nil {
		return m.GetByCardIDFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *mockCardRepository) ListByStatus(ctx context.Context, status vo.CardStatus) ([]*badge.PendingCard, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockCardRepository) Update(ctx context.Context, card *badge.PendingCard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	return nil
}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

func storedCard(t *testing.T, id uint, cardID string, status vo.CardStatus) *badge.PendingCard {
	t.Helper()
	c, err := badge.ReconstructPendingCard(id, cardID, time.Now().Add(-time.Minute), status.String())
	require.NoError(t, err)
	return c
}

func TestScanCardUseCase_Success(t *testing.T) {
	var created *badge.PendingCard
	repo := &mockCardRepository{
		CreateFunc: func(ctx context.Context, card *badge.PendingCard) error {
			created = card
			return card.SetID(1)
		},
	}
	tx := &mockTxRunner{}

	uc := NewScanCardUseCase(repo, tx, logger.NewNop())
	result, err := uc.Execute(context.Background(), ScanCardCommand{CardID: "ABC123", ScannedBy: "nfc-scanner"})

	require.NoError(t, err)
	assert.Equal(t, &dto.ScanResultDTO{Success: true, Message: dto.ScanAcceptedMessage, CardID: "ABC123"}, result)
	require.NotNil(t, created)
	assert.Equal(t, vo.StatusPending, created.Status())
	assert.Equal(t, 1, tx.calls)
}

func TestScanCardUseCase_AlreadyRegistered(t *testing.T) {
	repo := &mockCardRepository{
		CreateFunc: func(ctx context.Context, card *badge.PendingCard) error {
			return errors.NewConflictError("duplicate card")
		},
		GetByCardIDFunc: func(ctx context.Context, cardID string) (*badge.PendingCard, error) {
			return storedCard(t, 1, cardID, vo.StatusAssigned), nil
		},
	}

	uc := NewScanCardUseCase(repo, &mockTxRunner{}, logger.NewNop())
	_, err := uc.Execute(context.Background(), ScanCardCommand{CardID: "ABC123"})

	require.True(t, errors.IsConflictError(err))
	assert.Contains(t, errors.GetAppError(err).Message, "status: assigned")
}

func TestScanCardUseCase_InvalidCardID(t *testing.T) {
	tx := &mockTxRunner{}
	uc := NewScanCardUseCase(&mockCardRepository{}, tx, logger.NewNop())

	_, err := uc.Execute(context.Background(), ScanCardCommand{CardID: ""})

	assert.True(t, errors.IsValidationError(err))
	assert.Zero(t, tx.calls)
}

func TestListPendingCardsUseCase(t *testing.T) {
	var gotStatus vo.CardStatus
	repo := &mockCardRepository{
		ListByStatusFunc: func(ctx context.Context, status vo.CardStatus) ([]*badge.PendingCard, error) {
			gotStatus = status
			return []*badge.PendingCard{
				storedCard(t, 2, "NEW", vo.StatusPending),
				storedCard(t, 1, "OLD", vo.StatusPending),
			}, nil
		},
	}

	uc := NewListPendingCardsUseCase(repo, logger.NewNop())
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, vo.StatusPending, gotStatus)
	require.Len(t, result, 2)
	assert.Equal(t, "NEW", result[0].CardID)
	assert.Equal(t, "pending", result[0].Status)
}

func TestListPendingCardsUseCase_Empty(t *testing.T) {
	uc := NewListPendingCardsUseCase(&mockCardRepository{}, logger.NewNop())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAssignCardUseCase_Success(t *testing.T) {
	var updated *badge.PendingCard
	repo := &mockCardRepository{
		GetByCardIDFunc: func(ctx context.Context, cardID string) (*badge.PendingCard, error) {
			return storedCard(t, 1, cardID, vo.StatusPending), nil
		},
		UpdateFunc: func(ctx context.Context, card *badge.PendingCard) error {
			updated = card
			return nil
		},
	}

	uc := NewAssignCardUseCase(repo, &mockTxRunner{}, logger.NewNop())
	result, err := uc.Execute(context.Background(), AssignCardCommand{CardID: "ABC123", AssignedBy: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "assigned", result.Status)
	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsAssigned())
}

func TestAssignCardUseCase_NotFound(t *testing.T) {
	uc := NewAssignCardUseCase(&mockCardRepository{}, &mockTxRunner{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), AssignCardCommand{CardID: "UNKNOWN"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignCardUseCase_AlreadyAssignedSkipsWrite(t *testing.T) {
	repo := &mockCardRepository{
		GetByCardIDFunc: func(ctx context.Context, cardID string) (*badge.PendingCard, error) {
			return storedCard(t, 1, cardID, vo.StatusAssigned), nil
		},
		UpdateFunc: func(ctx context.Context, card *badge.PendingCard) error {
			t.Fatal("update must not be called")
			return nil
		},
	}

	uc := NewAssignCardUseCase(repo, &mockTxRunner{}, logger.NewNop())
	result, err := uc.Execute(context.Background(), AssignCardCommand{CardID: "ABC123"})

	require.NoError(t, err)
	assert.Equal(t, "assigned", result.Status)
}

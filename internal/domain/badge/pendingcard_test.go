package badge

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

func TestNewPendingCard(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	card, err := NewPendingCard("ABC123", now)
	require.NoError(t, err)

	assert.Equal(t, "ABC123", card.CardID())
	assert.Equal(t, vo.StatusPending, card.Status())
	assert.Equal(t, now, card.ScannedAt())
	assert.Zero(t, card.ID())
}

func TestNewPendingCard_InvalidCardID(t *testing.T) {
	tests := []struct {
		name   string
		cardID string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("A", vo.MaxCardIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewPendingCard(tt.cardID, time.Now())
			assert.Nil(t, card)
			require.True(t, errors.IsValidationError(err))
			assert.Equal(t, "card_id", errors.GetAppError(err).Fields[0].Field)
		})
	}
}

func TestNewPendingCard_MaxLength(t *testing.T) {
	_, err := NewPendingCard(strings.Repeat("A", vo.MaxCardIDLength), time.Now())
	assert.NoError(t, err)
}

func TestAssign(t *testing.T) {
	card, err := NewPendingCard("ABC123", time.Now())
	require.NoError(t, err)

	assert.True(t, card.Assign())
	assert.Equal(t, vo.StatusAssigned, card.Status())

	assert.False(t, card.Assign(), "second assign is a no-op")
	assert.Equal(t, vo.StatusAssigned, card.Status())
}

func TestReconstructPendingCard(t *testing.T) {
	scanned := time.Now().Add(-time.Hour)

	card, err := ReconstructPendingCard(3, "XYZ", scanned, "assigned")
	require.NoError(t, err)
	assert.Equal(t, uint(3), card.ID())
	assert.True(t, card.Status().IsAssigned())

	_, err = ReconstructPendingCard(0, "XYZ", scanned, "pending")
	assert.Error(t, err)

	_, err = ReconstructPendingCard(3, "XYZ", scanned, "lost")
	assert.Error(t, err)
}

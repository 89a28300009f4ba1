package badge

import (
	"context"

	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
)

// Repository persists scanned cards. GetByCardID returns (nil, nil) when the
// card is unknown; Create reports a duplicate card_id as a conflict AppError.
type Repository interface {
	Create(ctx context.Context, card *PendingCard) error
	GetByCardID(ctx context.Context, cardID string) (*PendingCard, error)
	// ListByStatus returns the newest scans first.
	ListByStatus(ctx context.Context, status vo.CardStatus) ([]*PendingCard, error)
	Update(ctx context.Context, card *PendingCard) error
}

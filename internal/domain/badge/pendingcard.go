// Package badge models NFC cards registered by the scanner service and
// awaiting assignment by an administrator.
package badge

import (
	"fmt"
	"time"

	vo "github.com/smartlock-inc/smartlock/internal/domain/badge/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
)

// PendingCard is a scanned badge. It starts pending and moves to assigned
// once; there is no way back.
type PendingCard struct {
	id        uint
	cardID    vo.CardID
	scannedAt time.Time
	status    vo.CardStatus
}

func NewPendingCard(cardID string, now time.Time) (*PendingCard, error) {
	id, err := vo.NewCardID(cardID)
	if err != nil {
		return nil, errors.NewFieldValidationError(constants.ErrMsgValidationFailed,
			errors.FieldError{Field: "card_id", Message: err.Error()})
	}

	return &PendingCard{
		cardID:    id,
		scannedAt: now.UTC(),
		status:    vo.StatusPending,
	}, nil
}

func ReconstructPendingCard(id uint, cardID string, scannedAt time.Time, status string) (*PendingCard, error) {
	if id == 0 {
		return nil, fmt.Errorf("pending card ID cannot be zero")
	}

	s, err := vo.NewCardStatus(status)
	if err != nil {
		return nil, fmt.Errorf("pending card %d: %w", id, err)
	}

	return &PendingCard{
		id:        id,
		cardID:    vo.CardID(cardID),
		scannedAt: scannedAt,
		status:    s,
	}, nil
}

func (c *PendingCard) ID() uint {
	return c.id
}

func (c *PendingCard) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("pending card ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pending card ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *PendingCard) CardID() string {
	return c.cardID.String()
}

func (c *PendingCard) ScannedAt() time.Time {
	return c.scannedAt
}

func (c *PendingCard) Status() vo.CardStatus {
	return c.status
}

// Assign marks the card as assigned. It reports false when the card was
// already assigned, in which case nothing changes.
func (c *PendingCard) Assign() bool {
	if !c.status.CanTransitionTo(vo.StatusAssigned) {
		return false
	}
	c.status = vo.StatusAssigned
	return true
}

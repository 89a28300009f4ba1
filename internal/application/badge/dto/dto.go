package dto

import (
	"time"

	"github.com/smartlock-inc/smartlock/internal/domain/badge"
)

const ScanAcceptedMessage = "Card registered, awaiting admin assignment"

type PendingCardDTO struct {
	ID        uint      `json:"id"`
	CardID    string    `json:"card_id"`
	ScannedAt time.Time `json:"scanned_at"`
	Status    string    `json:"status"`
}

// ScanResultDTO is the acknowledgement sent back to the scanner device.
type ScanResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CardID  string `json:"card_id"`
}

func ToPendingCardDTO(c *badge.PendingCard) *PendingCardDTO {
	if c == nil {
		return nil
	}
	return &PendingCardDTO{
		ID:        c.ID(),
		CardID:    c.CardID(),
		ScannedAt: c.ScannedAt(),
		Status:    c.Status().String(),
	}
}

func ToPendingCardDTOs(cards []*badge.PendingCard) []*PendingCardDTO {
	out := make([]*PendingCardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, ToPendingCardDTO(c))
	}
	return out
}

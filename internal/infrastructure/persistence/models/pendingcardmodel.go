package models

import (
	"time"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
)

type PendingCardModel struct {
	ID        uint      `gorm:"primaryKey"`
	CardID    string    `gorm:"size:64;not null;uniqueIndex"`
	ScannedAt time.Time `gorm:"not null;index"`
	Status    string    `gorm:"size:20;not null;index"`
}

func (PendingCardModel) TableName() string {
	return constants.TablePendingCards
}

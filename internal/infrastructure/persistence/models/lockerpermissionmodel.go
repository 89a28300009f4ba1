package models

import (
	"time"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
)

// LockerPermissionModel represents the database persistence model for locker permissions.
// Boolean columns carry no gorm default tag: gorm would replace an explicit
// false with the column default on insert.
type LockerPermissionModel struct {
	ID         uint      `gorm:"primaryKey"`
	RoleName   string    `gorm:"size:100;not null;index;uniqueIndex:unique_role_locker,priority:1"`
	LockerID   uint      `gorm:"not null;index;uniqueIndex:unique_role_locker,priority:2"`
	CanView    bool      `gorm:"not null"`
	CanOpen    bool      `gorm:"not null"`
	CanEdit    bool      `gorm:"not null"`
	CanTake    bool      `gorm:"not null"`
	CanManage  bool      `gorm:"not null"`
	ValidUntil *string   `gorm:"size:64"`
	CreatedAt  time.Time `gorm:"not null"`

	Locker *LockerModel `gorm:"foreignKey:LockerID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (LockerPermissionModel) TableName() string {
	return constants.TableLockerPermissions
}

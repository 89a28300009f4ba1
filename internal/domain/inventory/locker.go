package inventory

import (
	"fmt"
	"time"

	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

const MaxLockerTypeLength = 50

// Locker is a physical compartment that holds stock.
type Locker struct {
	id         uint
	lockerType string
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

type LockerPatch struct {
	LockerType optional.Value[string]
	IsActive   optional.Value[bool]
}

func NewLocker(lockerType string, isActive bool, now time.Time) (*Locker, error) {
	var fields fieldErrors
	fields.checkLength("locker_type", lockerType, 1, MaxLockerTypeLength)
	if err := fields.err(); err != nil {
		return nil, err
	}

	today := DateOf(now)
	return &Locker{lockerType: lockerType, isActive: isActive, createdAt: today, updatedAt: today}, nil
}

func ReconstructLocker(id uint, lockerType string, isActive bool, createdAt, updatedAt time.Time) (*Locker, error) {
	if id == 0 {
		return nil, fmt.Errorf("locker ID cannot be zero")
	}
	return &Locker{
		id:         id,
		lockerType: lockerType,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (l *Locker) ID() uint {
	return l.id
}

func (l *Locker) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("locker ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("locker ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Locker) LockerType() string {
	return l.lockerType
}

func (l *Locker) IsActive() bool {
	return l.isActive
}

func (l *Locker) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Locker) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *Locker) ApplyPatch(patch LockerPatch, now time.Time) error {
	var fields fieldErrors
	next := *l

	fields.patchString("locker_type", patch.LockerType, 1, MaxLockerTypeLength, &next.lockerType)
	fields.patchBool("is_active", patch.IsActive, &next.isActive)
	if err := fields.err(); err != nil {
		return err
	}

	next.updatedAt = DateOf(now)
	*l = next
	return nil
}

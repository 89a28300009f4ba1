package inventory

import (
	"fmt"
	"time"

	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

const (
	DefaultUnitMeasure   = "units"
	MaxUnitMeasureLength = 50
)

// Stock is the quantity of one item held in one locker. (item, locker) is
// unique across the store.
type Stock struct {
	id          uint
	quantity    int
	itemID      uint
	lockerID    uint
	unitMeasure string
	createdAt   time.Time
}

type StockPatch struct {
	Quantity    optional.Value[int]
	ItemID      optional.Value[uint]
	LockerID    optional.Value[uint]
	UnitMeasure optional.Value[string]
}

func NewStock(quantity int, itemID, lockerID uint, unitMeasure string, now time.Time) (*Stock, error) {
	var fields fieldErrors
	if quantity < 0 {
		fields.add("quantity", "must be greater than or equal to 0")
	}
	fields.checkID("item_id", itemID)
	fields.checkID("locker_id", lockerID)
	fields.checkLength("unit_measure", unitMeasure, 0, MaxUnitMeasureLength)
	if err := fields.err(); err != nil {
		return nil, err
	}

	return &Stock{
		quantity:    quantity,
		itemID:      itemID,
		lockerID:    lockerID,
		unitMeasure: unitMeasure,
		createdAt:   DateOf(now),
	}, nil
}

func ReconstructStock(id uint, quantity int, itemID, lockerID uint, unitMeasure string, createdAt time.Time) (*Stock, error) {
	if id == 0 {
		return nil, fmt.Errorf("stock ID cannot be zero")
	}
	return &Stock{
		id:          id,
		quantity:    quantity,
		itemID:      itemID,
		lockerID:    lockerID,
		unitMeasure: unitMeasure,
		createdAt:   createdAt,
	}, nil
}

func (s *Stock) ID() uint {
	return s.id
}

func (s *Stock) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("stock ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("stock ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Stock) Quantity() int {
	return s.quantity
}

func (s *Stock) ItemID() uint {
	return s.itemID
}

func (s *Stock) LockerID() uint {
	return s.lockerID
}

func (s *Stock) UnitMeasure() string {
	return s.unitMeasure
}

func (s *Stock) CreatedAt() time.Time {
	return s.createdAt
}

// ApplyPatch changes only the supplied fields. Stock rows have no
// updated_at, so the timestamp is ignored.
func (s *Stock) ApplyPatch(patch StockPatch, _ time.Time) error {
	var fields fieldErrors
	next := *s

	if patch.Quantity.IsSet() {
		q, ok := patch.Quantity.Get()
		switch {
		case !ok:
			fields.add("quantity", "cannot be null")
		case q < 0:
			fields.add("quantity", "must be greater than or equal to 0")
		default:
			next.quantity = q
		}
	}
	fields.patchID("item_id", patch.ItemID, &next.itemID)
	fields.patchID("locker_id", patch.LockerID, &next.lockerID)
	fields.patchString("unit_measure", patch.UnitMeasure, 0, MaxUnitMeasureLength, &next.unitMeasure)

	if err := fields.err(); err != nil {
		return err
	}

	*s = next
	return nil
}

package inventory

import (
	"fmt"
	"time"

	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

const (
	MaxItemNameLength      = 255
	MaxItemReferenceLength = 50
)

// Item is a kind of thing that can be stocked. Its reference code is unique.
type Item struct {
	id          uint
	name        string
	reference   string
	description *string
	categoryID  uint
	createdAt   time.Time
	updatedAt   time.Time
}

// ItemPatch is a partial update; Description accepts an explicit null.
type ItemPatch struct {
	Name        optional.Value[string]
	Reference   optional.Value[string]
	Description optional.Value[string]
	CategoryID  optional.Value[uint]
}

func NewItem(name, reference string, description *string, categoryID uint, now time.Time) (*Item, error) {
	var fields fieldErrors
	fields.checkLength("name", name, 1, MaxItemNameLength)
	fields.checkLength("reference", reference, 1, MaxItemReferenceLength)
	fields.checkID("category_id", categoryID)
	if err := fields.err(); err != nil {
		return nil, err
	}

	today := DateOf(now)
	return &Item{
		name:        name,
		reference:   reference,
		description: description,
		categoryID:  categoryID,
		createdAt:   today,
		updatedAt:   today,
	}, nil
}

func ReconstructItem(
	id uint,
	name, reference string,
	description *string,
	categoryID uint,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	return &Item{
		id:          id,
		name:        name,
		reference:   reference,
		description: description,
		categoryID:  categoryID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Reference() string {
	return i.reference
}

func (i *Item) Description() *string {
	return i.description
}

func (i *Item) CategoryID() uint {
	return i.categoryID
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) ApplyPatch(patch ItemPatch, now time.Time) error {
	var fields fieldErrors
	next := *i

	fields.patchString("name", patch.Name, 1, MaxItemNameLength, &next.name)
	fields.patchString("reference", patch.Reference, 1, MaxItemReferenceLength, &next.reference)
	fields.patchID("category_id", patch.CategoryID, &next.categoryID)
	if patch.Description.IsSet() {
		next.description = patch.Description.Ptr()
	}

	if err := fields.err(); err != nil {
		return err
	}

	next.updatedAt = DateOf(now)
	*i = next
	return nil
}

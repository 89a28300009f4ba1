package inventory

import (
	"fmt"
	"time"

	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

const MaxCategoryNameLength = 100

// Category groups items. Names are unique.
type Category struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

type CategoryPatch struct {
	Name optional.Value[string]
}

func NewCategory(name string, now time.Time) (*Category, error) {
	var fields fieldErrors
	fields.checkLength("name", name, 1, MaxCategoryNameLength)
	if err := fields.err(); err != nil {
		return nil, err
	}

	today := DateOf(now)
	return &Category{name: name, createdAt: today, updatedAt: today}, nil
}

func ReconstructCategory(id uint, name string, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	return &Category{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// ApplyPatch changes only the supplied fields. A rejected patch leaves the
// category unchanged.
func (c *Category) ApplyPatch(patch CategoryPatch, now time.Time) error {
	var fields fieldErrors
	next := *c

	fields.patchString("name", patch.Name, 1, MaxCategoryNameLength, &next.name)
	if err := fields.err(); err != nil {
		return err
	}

	next.updatedAt = DateOf(now)
	*c = next
	return nil
}

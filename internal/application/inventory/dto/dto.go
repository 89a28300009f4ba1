package dto

import (
	"time"

	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
)

// Date renders a calendar day as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"`+time.DateOnly+`"`, string(data))
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

type CategoryDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt Date   `json:"created_at"`
	UpdatedAt Date   `json:"updated_at"`
}

type ItemDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Reference   string  `json:"reference"`
	Description *string `json:"description"`
	CategoryID  uint    `json:"category_id"`
	CreatedAt   Date    `json:"created_at"`
	UpdatedAt   Date    `json:"updated_at"`
}

type LockerDTO struct {
	ID         uint   `json:"id"`
	LockerType string `json:"locker_type"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  Date   `json:"created_at"`
	UpdatedAt  Date   `json:"updated_at"`
}

type StockDTO struct {
	ID          uint   `json:"id"`
	Quantity    int    `json:"quantity"`
	ItemID      uint   `json:"item_id"`
	LockerID    uint   `json:"locker_id"`
	UnitMeasure string `json:"unit_measure"`
	CreatedAt   Date   `json:"created_at"`
}

func ToCategoryDTO(c *inventory.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: Date(c.CreatedAt()),
		UpdatedAt: Date(c.UpdatedAt()),
	}
}

func ToItemDTO(i *inventory.Item) *ItemDTO {
	if i == nil {
		return nil
	}
	return &ItemDTO{
		ID:          i.ID(),
		Name:        i.Name(),
		Reference:   i.Reference(),
		Description: i.Description(),
		CategoryID:  i.CategoryID(),
		CreatedAt:   Date(i.CreatedAt()),
		UpdatedAt:   Date(i.UpdatedAt()),
	}
}

func ToLockerDTO(l *inventory.Locker) *LockerDTO {
	if l == nil {
		return nil
	}
	return &LockerDTO{
		ID:         l.ID(),
		LockerType: l.LockerType(),
		IsActive:   l.IsActive(),
		CreatedAt:  Date(l.CreatedAt()),
		UpdatedAt:  Date(l.UpdatedAt()),
	}
}

func ToStockDTO(s *inventory.Stock) *StockDTO {
	if s == nil {
		return nil
	}
	return &StockDTO{
		ID:          s.ID(),
		Quantity:    s.Quantity(),
		ItemID:      s.ItemID(),
		LockerID:    s.LockerID(),
		UnitMeasure: s.UnitMeasure(),
		CreatedAt:   Date(s.CreatedAt()),
	}
}

func ToStockDTOs(stock []*inventory.Stock) []*StockDTO {
	out := make([]*StockDTO, 0, len(stock))
	for _, s := range stock {
		out = append(out, ToStockDTO(s))
	}
	return out
}

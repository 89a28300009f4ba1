package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
)

// EntityMapper converts one inventory aggregate to and from its model.
type EntityMapper[E any, M any] interface {
	ToEntity(model *M) (*E, error)
	ToModel(entity *E) *M
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(inventory.DateOf(t))
}

func fromDate(d datatypes.Date) time.Time {
	return inventory.DateOf(time.Time(d))
}

type CategoryMapper struct{}

func (CategoryMapper) ToEntity(model *models.CategoryModel) (*inventory.Category, error) {
	return inventory.ReconstructCategory(model.ID, model.Name, fromDate(model.CreatedAt), fromDate(model.UpdatedAt))
}

func (CategoryMapper) ToModel(entity *inventory.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: toDate(entity.CreatedAt()),
		UpdatedAt: toDate(entity.UpdatedAt()),
	}
}

type ItemMapper struct{}

func (ItemMapper) ToEntity(model *models.ItemModel) (*inventory.Item, error) {
	return inventory.ReconstructItem(
		model.ID,
		model.Name,
		model.Reference,
		model.Description,
		model.CategoryID,
		fromDate(model.CreatedAt),
		fromDate(model.UpdatedAt),
	)
}

func (ItemMapper) ToModel(entity *inventory.Item) *models.ItemModel {
	return &models.ItemModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Reference:   entity.Reference(),
		Description: entity.Description(),
		CategoryID:  entity.CategoryID(),
		CreatedAt:   toDate(entity.CreatedAt()),
		UpdatedAt:   toDate(entity.UpdatedAt()),
	}
}

type LockerMapper struct{}

func (LockerMapper) ToEntity(model *models.LockerModel) (*inventory.Locker, error) {
	return inventory.ReconstructLocker(
		model.ID,
		model.LockerType,
		model.IsActive,
		fromDate(model.CreatedAt),
		fromDate(model.UpdatedAt),
	)
}

func (LockerMapper) ToModel(entity *inventory.Locker) *models.LockerModel {
	return &models.LockerModel{
		ID:         entity.ID(),
		LockerType: entity.LockerType(),
		IsActive:   entity.IsActive(),
		CreatedAt:  toDate(entity.CreatedAt()),
		UpdatedAt:  toDate(entity.UpdatedAt()),
	}
}

type StockMapper struct{}

func (StockMapper) ToEntity(model *models.StockModel) (*inventory.Stock, error) {
	return inventory.ReconstructStock(
		model.ID,
		model.Quantity,
		model.ItemID,
		model.LockerID,
		model.UnitMeasure,
		fromDate(model.CreatedAt),
	)
}

func (StockMapper) ToModel(entity *inventory.Stock) *models.StockModel {
	return &models.StockModel{
		ID:          entity.ID(),
		Quantity:    entity.Quantity(),
		ItemID:      entity.ItemID(),
		LockerID:    entity.LockerID(),
		UnitMeasure: entity.UnitMeasure(),
		CreatedAt:   toDate(entity.CreatedAt()),
	}
}

var (
	_ EntityMapper[inventory.Category, models.CategoryModel] = CategoryMapper{}
	_ EntityMapper[inventory.Item, models.ItemModel]         = ItemMapper{}
	_ EntityMapper[inventory.Locker, models.LockerModel]     = LockerMapper{}
	_ EntityMapper[inventory.Stock, models.StockModel]       = StockMapper{}
)

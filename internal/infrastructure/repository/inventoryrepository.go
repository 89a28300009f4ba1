package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/mappers"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/persistence/models"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
)

type identified interface {
	ID() uint
	SetID(id uint) error
}

// crudRepository stores one inventory entity type E through its gorm model M.
type crudRepository[E any, M any, T interface {
	*E
	identified
}] struct {
	db          *gorm.DB
	mapper      mappers.EntityMapper[E, M]
	resource    string
	constraints constraintMessages
	modelID     func(*M) uint
	columns     func(*M) map[string]interface{}
}

func (r *crudRepository[E, M, T]) Create(ctx context.Context, entity T) error {
	model := r.mapper.ToModel((*E)(entity))
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return translateWriteError(err, "create "+r.resource, r.constraints)
	}

	return entity.SetID(r.modelID(model))
}

func (r *crudRepository[E, M, T]) GetByID(ctx context.Context, id uint) (T, error) {
	var model M
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.resource, err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct %s: %w", r.resource, err)
	}
	return T(entity), nil
}

func (r *crudRepository[E, M, T]) List(ctx context.Context, skip, limit int) ([]T, error) {
	var rows []*M
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.Page(skip, limit)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.resource, err)
	}
	return r.toEntities(rows)
}

func (r *crudRepository[E, M, T]) Update(ctx context.Context, entity T) error {
	model := r.mapper.ToModel((*E)(entity))
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(new(M)).Where("id = ?", entity.ID()).Updates(r.columns(model))
	if result.Error != nil {
		return translateWriteError(result.Error, "update "+r.resource, r.constraints)
	}
	return nil
}

func (r *crudRepository[E, M, T]) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(new(M), id).Error; err != nil {
		return translateDeleteError(err, "delete "+r.resource, capitalized(r.resource))
	}
	return nil
}

func (r *crudRepository[E, M, T]) toEntities(rows []*M) ([]T, error) {
	entities := make([]T, 0, len(rows))
	for _, row := range rows {
		entity, err := r.mapper.ToEntity(row)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct %s: %w", r.resource, err)
		}
		entities = append(entities, T(entity))
	}
	return entities, nil
}

func capitalized(s string) string {
	return cases.Title(language.Und).String(s)
}

type CategoryRepositoryImpl struct {
	*crudRepository[inventory.Category, models.CategoryModel, *inventory.Category]
}

func NewCategoryRepository(db *gorm.DB) inventory.CategoryRepository {
	return &CategoryRepositoryImpl{&crudRepository[inventory.Category, models.CategoryModel, *inventory.Category]{
		db:       db,
		mapper:   mappers.CategoryMapper{},
		resource: "category",
		constraints: constraintMessages{
			duplicate:  "A category with this name already exists",
			missingRef: "Invalid category reference",
		},
		modelID: func(m *models.CategoryModel) uint { return m.ID },
		columns: func(m *models.CategoryModel) map[string]interface{} {
			return map[string]interface{}{
				"name":       m.Name,
				"updated_at": m.UpdatedAt,
			}
		},
	}}
}

type ItemRepositoryImpl struct {
	*crudRepository[inventory.Item, models.ItemModel, *inventory.Item]
}

func NewItemRepository(db *gorm.DB) inventory.ItemRepository {
	return &ItemRepositoryImpl{&crudRepository[inventory.Item, models.ItemModel, *inventory.Item]{
		db:       db,
		mapper:   mappers.ItemMapper{},
		resource: "item",
		constraints: constraintMessages{
			duplicate:  "An item with this reference already exists",
			missingRef: "Referenced category does not exist",
		},
		modelID: func(m *models.ItemModel) uint { return m.ID },
		columns: func(m *models.ItemModel) map[string]interface{} {
			return map[string]interface{}{
				"name":        m.Name,
				"reference":   m.Reference,
				"description": m.Description,
				"category_id": m.CategoryID,
				"updated_at":  m.UpdatedAt,
			}
		},
	}}
}

type LockerRepositoryImpl struct {
	*crudRepository[inventory.Locker, models.LockerModel, *inventory.Locker]
}

func NewLockerRepository(db *gorm.DB) inventory.LockerRepository {
	return &LockerRepositoryImpl{&crudRepository[inventory.Locker, models.LockerModel, *inventory.Locker]{
		db:       db,
		mapper:   mappers.LockerMapper{},
		resource: "locker",
		constraints: constraintMessages{
			duplicate:  "Locker already exists",
			missingRef: "Invalid locker reference",
		},
		modelID: func(m *models.LockerModel) uint { return m.ID },
		columns: func(m *models.LockerModel) map[string]interface{} {
			return map[string]interface{}{
				"locker_type": m.LockerType,
				"is_active":   m.IsActive,
				"updated_at":  m.UpdatedAt,
			}
		},
	}}
}

type StockRepositoryImpl struct {
	*crudRepository[inventory.Stock, models.StockModel, *inventory.Stock]
}

func NewStockRepository(db *gorm.DB) inventory.StockRepository {
	return &StockRepositoryImpl{&crudRepository[inventory.Stock, models.StockModel, *inventory.Stock]{
		db:       db,
		mapper:   mappers.StockMapper{},
		resource: "stock",
		constraints: constraintMessages{
			duplicate:  "Stock for this item and locker already exists",
			missingRef: "Referenced item or locker does not exist",
		},
		modelID: func(m *models.StockModel) uint { return m.ID },
		columns: func(m *models.StockModel) map[string]interface{} {
			return map[string]interface{}{
				"quantity":     m.Quantity,
				"item_id":      m.ItemID,
				"locker_id":    m.LockerID,
				"unit_measure": m.UnitMeasure,
			}
		},
	}}
}

func (r *StockRepositoryImpl) ListByLocker(ctx context.Context, lockerID uint) ([]*inventory.Stock, error) {
	var rows []*models.StockModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("locker_id = ?", lockerID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock for locker: %w", err)
	}
	return r.toEntities(rows)
}

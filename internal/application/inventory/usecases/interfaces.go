package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
)

type CategoryManager interface {
	Create(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
	Get(ctx context.Context, id uint) (*dto.CategoryDTO, error)
	List(ctx context.Context, query ListQuery) ([]*dto.CategoryDTO, error)
	Update(ctx context.Context, id uint, patch inventory.CategoryPatch) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, id uint) (*dto.CategoryDTO, error)
}

type ItemManager interface {
	Create(ctx context.Context, cmd CreateItemCommand) (*dto.ItemDTO, error)
	Get(ctx context.Context, id uint) (*dto.ItemDTO, error)
	List(ctx context.Context, query ListQuery) ([]*dto.ItemDTO, error)
	Update(ctx context.Context, id uint, patch inventory.ItemPatch) (*dto.ItemDTO, error)
	Delete(ctx context.Context, id uint) (*dto.ItemDTO, error)
}

type LockerManager interface {
	Create(ctx context.Context, cmd CreateLockerCommand) (*dto.LockerDTO, error)
	Get(ctx context.Context, id uint) (*dto.LockerDTO, error)
	List(ctx context.Context, query ListQuery) ([]*dto.LockerDTO, error)
	Update(ctx context.Context, id uint, patch inventory.LockerPatch) (*dto.LockerDTO, error)
	Delete(ctx context.Context, id uint) (*dto.LockerDTO, error)
	ListStock(ctx context.Context, lockerID uint) ([]*dto.StockDTO, error)
}

type StockManager interface {
	Create(ctx context.Context, cmd CreateStockCommand) (*dto.StockDTO, error)
	Get(ctx context.Context, id uint) (*dto.StockDTO, error)
	List(ctx context.Context, query ListQuery) ([]*dto.StockDTO, error)
	Update(ctx context.Context, id uint, patch inventory.StockPatch) (*dto.StockDTO, error)
	Delete(ctx context.Context, id uint) (*dto.StockDTO, error)
}

var (
	_ CategoryManager = (*CategoryService)(nil)
	_ ItemManager     = (*ItemService)(nil)
	_ LockerManager   = (*LockerService)(nil)
	_ StockManager    = (*StockService)(nil)
)

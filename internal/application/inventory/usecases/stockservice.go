package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type CreateStockCommand struct {
	Quantity    int
	ItemID      uint
	LockerID    uint
	// UnitMeasure defaults to inventory.DefaultUnitMeasure when nil.
	UnitMeasure *string
}

type StockService struct {
	crud *crudService[inventory.Stock, inventory.StockPatch, *dto.StockDTO, *inventory.Stock]
}

func NewStockService(repo inventory.StockRepository, txMgr db.Runner, logger logger.Interface) *StockService {
	return &StockService{
		crud: newCRUDService[inventory.Stock, inventory.StockPatch](
			"stock", inventory.Repository[*inventory.Stock](repo), txMgr, logger, dto.ToStockDTO),
	}
}

func (s *StockService) Create(ctx context.Context, cmd CreateStockCommand) (*dto.StockDTO, error) {
	unit := inventory.DefaultUnitMeasure
	if cmd.UnitMeasure != nil {
		unit = *cmd.UnitMeasure
	}

	st, err := inventory.NewStock(cmd.Quantity, cmd.ItemID, cmd.LockerID, unit, s.crud.now())
	if err != nil {
		return nil, err
	}
	return s.crud.create(ctx, st)
}

func (s *StockService) Get(ctx context.Context, id uint) (*dto.StockDTO, error) {
	return s.crud.get(ctx, id)
}

func (s *StockService) List(ctx context.Context, query ListQuery) ([]*dto.StockDTO, error) {
	return s.crud.list(ctx, query)
}

func (s *StockService) Update(ctx context.Context, id uint, patch inventory.StockPatch) (*dto.StockDTO, error) {
	return s.crud.update(ctx, id, patch)
}

func (s *StockService) Delete(ctx context.Context, id uint) (*dto.StockDTO, error) {
	return s.crud.delete(ctx, id)
}

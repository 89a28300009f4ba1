package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type CreateLockerCommand struct {
	LockerType string
	IsActive   bool
}

type LockerService struct {
	crud      *crudService[inventory.Locker, inventory.LockerPatch, *dto.LockerDTO, *inventory.Locker]
	stockRepo inventory.StockRepository
}

func NewLockerService(
	repo inventory.LockerRepository,
	stockRepo inventory.StockRepository,
	txMgr db.Runner,
	logger logger.Interface,
) *LockerService {
	return &LockerService{
		crud: newCRUDService[inventory.Locker, inventory.LockerPatch](
			"locker", inventory.Repository[*inventory.Locker](repo), txMgr, logger, dto.ToLockerDTO),
		stockRepo: stockRepo,
	}
}

func (s *LockerService) Create(ctx context.Context, cmd CreateLockerCommand) (*dto.LockerDTO, error) {
	l, err := inventory.NewLocker(cmd.LockerType, cmd.IsActive, s.crud.now())
	if err != nil {
		return nil, err
	}
	return s.crud.create(ctx, l)
}

func (s *LockerService) Get(ctx context.Context, id uint) (*dto.LockerDTO, error) {
	return s.crud.get(ctx, id)
}

func (s *LockerService) List(ctx context.Context, query ListQuery) ([]*dto.LockerDTO, error) {
	return s.crud.list(ctx, query)
}

func (s *LockerService) Update(ctx context.Context, id uint, patch inventory.LockerPatch) (*dto.LockerDTO, error) {
	return s.crud.update(ctx, id, patch)
}

func (s *LockerService) Delete(ctx context.Context, id uint) (*dto.LockerDTO, error) {
	return s.crud.delete(ctx, id)
}

// ListStock returns the stock held in a locker. An unknown locker has no
// stock, so the result is empty rather than an error.
func (s *LockerService) ListStock(ctx context.Context, lockerID uint) ([]*dto.StockDTO, error) {
	log := s.crud.logger.WithContext(ctx)
	log.Debugw("listing locker stock", "locker_id", lockerID)

	stock, err := s.stockRepo.ListByLocker(ctx, lockerID)
	if err != nil {
		return nil, storeError(log, err, "failed to list locker stock")
	}

	log.Infow("locker stock listed", "locker_id", lockerID, "count", len(stock))
	return dto.ToStockDTOs(stock), nil
}

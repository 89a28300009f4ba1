package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type CreateItemCommand struct {
	Name        string
	Reference   string
	Description *string
	CategoryID  uint
}

type ItemService struct {
	crud *crudService[inventory.Item, inventory.ItemPatch, *dto.ItemDTO, *inventory.Item]
}

func NewItemService(repo inventory.ItemRepository, txMgr db.Runner, logger logger.Interface) *ItemService {
	return &ItemService{
		crud: newCRUDService[inventory.Item, inventory.ItemPatch](
			"item", inventory.Repository[*inventory.Item](repo), txMgr, logger, dto.ToItemDTO),
	}
}

func (s *ItemService) Create(ctx context.Context, cmd CreateItemCommand) (*dto.ItemDTO, error) {
	i, err := inventory.NewItem(cmd.Name, cmd.Reference, cmd.Description, cmd.CategoryID, s.crud.now())
	if err != nil {
		return nil, err
	}
	return s.crud.create(ctx, i)
}

func (s *ItemService) Get(ctx context.Context, id uint) (*dto.ItemDTO, error) {
	return s.crud.get(ctx, id)
}

func (s *ItemService) List(ctx context.Context, query ListQuery) ([]*dto.ItemDTO, error) {
	return s.crud.list(ctx, query)
}

func (s *ItemService) Update(ctx context.Context, id uint, patch inventory.ItemPatch) (*dto.ItemDTO, error) {
	return s.crud.update(ctx, id, patch)
}

func (s *ItemService) Delete(ctx context.Context, id uint) (*dto.ItemDTO, error) {
	return s.crud.delete(ctx, id)
}

package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name string
}

type CategoryService struct {
	crud *crudService[inventory.Category, inventory.CategoryPatch, *dto.CategoryDTO, *inventory.Category]
}

func NewCategoryService(repo inventory.CategoryRepository, txMgr db.Runner, logger logger.Interface) *CategoryService {
	return &CategoryService{
		crud: newCRUDService[inventory.Category, inventory.CategoryPatch](
			"category", inventory.Repository[*inventory.Category](repo), txMgr, logger, dto.ToCategoryDTO),
	}
}

func (s *CategoryService) Create(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	c, err := inventory.NewCategory(cmd.Name, s.crud.now())
	if err != nil {
		return nil, err
	}
	return s.crud.create(ctx, c)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	return s.crud.get(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, query ListQuery) ([]*dto.CategoryDTO, error) {
	return s.crud.list(ctx, query)
}

func (s *CategoryService) Update(ctx context.Context, id uint, patch inventory.CategoryPatch) (*dto.CategoryDTO, error) {
	return s.crud.update(ctx, id, patch)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	return s.crud.delete(ctx, id)
}

package http

import (
	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/domain/badge"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/repository"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	permissionRepo  permission.Repository
	pendingCardRepo badge.Repository
	categoryRepo    inventory.CategoryRepository
	itemRepo        inventory.ItemRepository
	lockerRepo      inventory.LockerRepository
	stockRepo       inventory.StockRepository

	txMgr *db.TransactionManager
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		permissionRepo:  repository.NewPermissionRepository(gdb),
		pendingCardRepo: repository.NewPendingCardRepository(gdb),
		categoryRepo:    repository.NewCategoryRepository(gdb),
		itemRepo:        repository.NewItemRepository(gdb),
		lockerRepo:      repository.NewLockerRepository(gdb),
		stockRepo:       repository.NewStockRepository(gdb),
		txMgr:           db.NewTransactionManager(gdb),
	}
}

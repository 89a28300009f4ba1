package http

import (
	badgeUsecases "github.com/smartlock-inc/smartlock/internal/application/badge/usecases"
	inventoryUsecases "github.com/smartlock-inc/smartlock/internal/application/inventory/usecases"
	permissionUsecases "github.com/smartlock-inc/smartlock/internal/application/permission/usecases"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// allUseCases holds all use case and application service instances.
type allUseCases struct {
	// Permission
	createPermissionUC      *permissionUsecases.CreatePermissionUseCase
	getPermissionUC         *permissionUsecases.GetPermissionUseCase
	listPermissionsUC       *permissionUsecases.ListPermissionsUseCase
	listLockerPermissionsUC *permissionUsecases.ListLockerPermissionsUseCase
	getRolePermissionUC     *permissionUsecases.GetRolePermissionUseCase
	updatePermissionUC      *permissionUsecases.UpdatePermissionUseCase
	deletePermissionUC      *permissionUsecases.DeletePermissionUseCase

	// Badge
	scanCardUC         *badgeUsecases.ScanCardUseCase
	listPendingCardsUC *badgeUsecases.ListPendingCardsUseCase
	assignCardUC       *badgeUsecases.AssignCardUseCase

	// Inventory
	categoryService *inventoryUsecases.CategoryService
	itemService     *inventoryUsecases.ItemService
	lockerService   *inventoryUsecases.LockerService
	stockService    *inventoryUsecases.StockService
}

func newUseCases(repos *repositories, log logger.Interface) *allUseCases {
	return &allUseCases{
		createPermissionUC:      permissionUsecases.NewCreatePermissionUseCase(repos.permissionRepo, repos.txMgr, log),
		getPermissionUC:         permissionUsecases.NewGetPermissionUseCase(repos.permissionRepo, log),
		listPermissionsUC:       permissionUsecases.NewListPermissionsUseCase(repos.permissionRepo, log),
		listLockerPermissionsUC: permissionUsecases.NewListLockerPermissionsUseCase(repos.permissionRepo, log),
		getRolePermissionUC:     permissionUsecases.NewGetRolePermissionUseCase(repos.permissionRepo, log),
		updatePermissionUC:      permissionUsecases.NewUpdatePermissionUseCase(repos.permissionRepo, repos.txMgr, log),
		deletePermissionUC:      permissionUsecases.NewDeletePermissionUseCase(repos.permissionRepo, repos.txMgr, log),

		scanCardUC:         badgeUsecases.NewScanCardUseCase(repos.pendingCardRepo, repos.txMgr, log),
		listPendingCardsUC: badgeUsecases.NewListPendingCardsUseCase(repos.pendingCardRepo, log),
		assignCardUC:       badgeUsecases.NewAssignCardUseCase(repos.pendingCardRepo, repos.txMgr, log),

		categoryService: inventoryUsecases.NewCategoryService(repos.categoryRepo, repos.txMgr, log),
		itemService:     inventoryUsecases.NewItemService(repos.itemRepo, repos.txMgr, log),
		lockerService:   inventoryUsecases.NewLockerService(repos.lockerRepo, repos.stockRepo, repos.txMgr, log),
		stockService:    inventoryUsecases.NewStockService(repos.stockRepo, repos.txMgr, log),
	}
}

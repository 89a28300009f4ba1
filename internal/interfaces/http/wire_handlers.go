package http

import (
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	systemHandler     *handlers.SystemHandler
	badgeHandler      *handlers.BadgeHandler
	permissionHandler *handlers.PermissionHandler
	categoryHandler   *handlers.CategoryHandler
	itemHandler       *handlers.ItemHandler
	lockerHandler     *handlers.LockerHandler
	stockHandler      *handlers.StockHandler
}

func newHandlers(ucs *allUseCases, pinger handlers.DatabasePinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		systemHandler: handlers.NewSystemHandler(pinger, log),
		badgeHandler: handlers.NewBadgeHandler(
			ucs.scanCardUC,
			ucs.listPendingCardsUC,
			ucs.assignCardUC,
			log,
		),
		permissionHandler: handlers.NewPermissionHandler(
			ucs.createPermissionUC,
			ucs.getPermissionUC,
			ucs.listPermissionsUC,
			ucs.listLockerPermissionsUC,
			ucs.getRolePermissionUC,
			ucs.updatePermissionUC,
			ucs.deletePermissionUC,
			log,
		),
		categoryHandler: handlers.NewCategoryHandler(ucs.categoryService, log),
		itemHandler:     handlers.NewItemHandler(ucs.itemService, log),
		lockerHandler:   handlers.NewLockerHandler(ucs.lockerService, log),
		stockHandler:    handlers.NewStockHandler(ucs.stockService, log),
	}
}

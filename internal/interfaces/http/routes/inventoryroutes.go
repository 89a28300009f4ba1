package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers"
)

type InventoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	ItemHandler     *handlers.ItemHandler
	LockerHandler   *handlers.LockerHandler
	StockHandler    *handlers.StockHandler
}

func SetupInventoryRoutes(engine *gin.Engine, config *InventoryRouteConfig) {
	categories := engine.Group("/categories")
	{
		categories.POST("", config.CategoryHandler.CreateCategory)
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.GET("/:id", config.CategoryHandler.GetCategory)
		categories.PUT("/:id", config.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", config.CategoryHandler.DeleteCategory)
	}

	items := engine.Group("/items")
	{
		items.POST("", config.ItemHandler.CreateItem)
		items.GET("", config.ItemHandler.ListItems)
		items.GET("/:id", config.ItemHandler.GetItem)
		items.PUT("/:id", config.ItemHandler.UpdateItem)
		items.DELETE("/:id", config.ItemHandler.DeleteItem)
	}

	lockers := engine.Group("/lockers")
	{
		lockers.POST("", config.LockerHandler.CreateLocker)
		lockers.GET("", config.LockerHandler.ListLockers)
		lockers.GET("/:id", config.LockerHandler.GetLocker)
		lockers.GET("/:id/stock", config.LockerHandler.ListLockerStock)
		lockers.PUT("/:id", config.LockerHandler.UpdateLocker)
		lockers.DELETE("/:id", config.LockerHandler.DeleteLocker)
	}

	stock := engine.Group("/stock")
	{
		stock.POST("", config.StockHandler.CreateStock)
		stock.GET("", config.StockHandler.ListStock)
		stock.GET("/:id", config.StockHandler.GetStock)
		stock.PUT("/:id", config.StockHandler.UpdateStock)
		stock.DELETE("/:id", config.StockHandler.DeleteStock)
	}
}

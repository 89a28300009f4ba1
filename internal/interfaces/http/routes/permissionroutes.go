package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers"
)

type PermissionRouteConfig struct {
	PermissionHandler *handlers.PermissionHandler
}

func SetupPermissionRoutes(engine *gin.Engine, config *PermissionRouteConfig) {
	permissions := engine.Group("/permissions")
	{
		permissions.POST("", config.PermissionHandler.CreatePermission)
		permissions.GET("", config.PermissionHandler.ListPermissions)

		// Locker scoped lookups (registered before /:id)
		permissions.GET("/locker/:locker_id", config.PermissionHandler.ListLockerPermissions)
		permissions.GET("/locker/:locker_id/role/:role_name", config.PermissionHandler.GetRolePermission)

		permissions.GET("/:id", config.PermissionHandler.GetPermission)
		permissions.PUT("/:id", config.PermissionHandler.UpdatePermission)
		permissions.DELETE("/:id", config.PermissionHandler.DeletePermission)
	}
}

package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"
	"rentify/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterPropertyRoutes(router *gin.Engine, propertyController *controllers.PropertyController) {
	propertyRoutesPublic := router.Group("/api/v1/properties")
	{
		propertyRoutesPublic.GET("/", propertyController.GetProperties)
		propertyRoutesPublic.GET("/:id", propertyController.GetProperty)
	}

	propertyRoutesPrivate := router.Group("/api/v1/properties")
	propertyRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		propertyRoutesPrivate.POST("/", middleware.RequireRoles(
			models.RoleLandlord, models.RoleAdmin, models.RoleModerator),
			propertyController.CreateProperty)
		propertyRoutesPrivate.PUT("/:id", propertyController.UpdateProperty)
		propertyRoutesPrivate.DELETE("/:id", propertyController.DeleteProperty)
	}

	propertyRoutesPrivileged := router.Group("/api/v1/properties")
	propertyRoutesPrivileged.Use(middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleModerator))
	{
		propertyRoutesPrivileged.PUT("/:id/publish", propertyController.PublishProperty)
		propertyRoutesPrivileged.PUT("/:id/moderate", propertyController.ModerateProperty)
	}
}

package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTenantRoutes(router *gin.Engine, tenantController *controllers.TenantController) {
	tenantRoutesPublic := router.Group("/api/v1/tenants")
	{
		tenantRoutesPublic.POST("/", tenantController.Register)
		tenantRoutesPublic.GET("/", tenantController.GetTenants)
		tenantRoutesPublic.GET("/:id", tenantController.GetTenant)
	}

	tenantRoutesPrivate := router.Group("/api/v1/tenants")
	tenantRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		tenantRoutesPrivate.PUT("/:id", tenantController.UpdateTenant)
		tenantRoutesPrivate.DELETE("/:id", tenantController.DeleteTenant)
		tenantRoutesPrivate.GET("/:id/favorites", tenantController.GetFavorites)
		tenantRoutesPrivate.POST("/:id/favorites", tenantController.AddFavorite)
		tenantRoutesPrivate.DELETE("/:id/favorites/:propertyId", tenantController.RemoveFavorite)
	}
}

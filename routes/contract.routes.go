package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"
	"rentify/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterContractRoutes(router *gin.Engine, contractController *controllers.ContractController) {
	contractRoutesPrivate := router.Group("/api/v1/contracts")
	contractRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		contractRoutesPrivate.GET("/:id", contractController.GetContract)
		contractRoutesPrivate.POST("/", middleware.RequireRoles(
			models.RoleTenant, models.RoleAdmin, models.RoleModerator),
			contractController.CreateContract)
	}

	contractRoutesPrivileged := router.Group("/api/v1/contracts")
	contractRoutesPrivileged.Use(middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleModerator))
	{
		contractRoutesPrivileged.GET("/", contractController.GetContracts)
		contractRoutesPrivileged.PUT("/:id", contractController.UpdateContract)
		contractRoutesPrivileged.DELETE("/:id", contractController.DeleteContract)
	}
}

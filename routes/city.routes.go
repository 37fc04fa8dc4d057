package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"
	"rentify/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterCityRoutes(router *gin.Engine, cityController *controllers.CityController) {
	cityRoutesPublic := router.Group("/api/v1/cities")
	{
		cityRoutesPublic.GET("/", cityController.GetCities)
		cityRoutesPublic.GET("/:id", cityController.GetCity)
	}

	cityRoutesPrivileged := router.Group("/api/v1/cities")
	cityRoutesPrivileged.Use(middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleModerator))
	{
		cityRoutesPrivileged.POST("/", cityController.CreateCity)
		cityRoutesPrivileged.PUT("/:id", cityController.UpdateCity)
		cityRoutesPrivileged.DELETE("/:id", cityController.DeleteCity)
	}
}

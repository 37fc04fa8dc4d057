package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterLandlordRoutes(router *gin.Engine, landlordController *controllers.LandlordController) {
	landlordRoutesPublic := router.Group("/api/v1/landlords")
	{
		landlordRoutesPublic.POST("/", landlordController.Register)
		landlordRoutesPublic.GET("/", landlordController.GetLandlords)
		landlordRoutesPublic.GET("/:id", landlordController.GetLandlord)
		landlordRoutesPublic.GET("/:id/properties", landlordController.GetLandlordProperties)
	}

	landlordRoutesPrivate := router.Group("/api/v1/landlords")
	landlordRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		landlordRoutesPrivate.PUT("/:id", landlordController.UpdateLandlord)
		landlordRoutesPrivate.DELETE("/:id", landlordController.DeleteLandlord)
	}
}

package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"
	"rentify/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterConsumerRoutes(router *gin.Engine, consumerController *controllers.ConsumerController) {
	consumerRoutesPublic := router.Group("/api/v1/consumers")
	{
		consumerRoutesPublic.GET("/:id/reviews", consumerController.GetConsumerReviews)
		consumerRoutesPublic.GET("/:id/rating", consumerController.GetConsumerRating)
	}

	consumerRoutesPrivate := router.Group("/api/v1/consumers")
	consumerRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		consumerRoutesPrivate.GET("/:id/contracts", consumerController.GetConsumerContracts)
	}

	consumerRoutesPrivileged := router.Group("/api/v1/consumers")
	consumerRoutesPrivileged.Use(middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleModerator))
	{
		consumerRoutesPrivileged.PUT("/:id/block", consumerController.BlockConsumer)
		consumerRoutesPrivileged.PUT("/:id/activate", consumerController.ActivateConsumer)
	}
}

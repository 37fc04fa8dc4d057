package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"
	"rentify/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterReviewRoutes(router *gin.Engine, reviewController *controllers.ReviewController) {
	reviewRoutesPublic := router.Group("/api/v1/reviews")
	{
		reviewRoutesPublic.GET("/:id", reviewController.GetReview)
	}

	reviewRoutesPrivate := router.Group("/api/v1/reviews")
	reviewRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		reviewRoutesPrivate.POST("/", middleware.RequireRoles(
			models.RoleLandlord, models.RoleTenant, models.RoleAdmin, models.RoleModerator),
			reviewController.CreateReview)
	}

	reviewRoutesPrivileged := router.Group("/api/v1/reviews")
	reviewRoutesPrivileged.Use(middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleModerator))
	{
		reviewRoutesPrivileged.GET("/", reviewController.GetReviews)
		reviewRoutesPrivileged.PUT("/:id", reviewController.UpdateReview)
		reviewRoutesPrivileged.DELETE("/:id", reviewController.DeleteReview)
		reviewRoutesPrivileged.PUT("/:id/publish", reviewController.PublishReview)
		reviewRoutesPrivileged.PUT("/:id/moderate", reviewController.ModerateReview)
	}
}

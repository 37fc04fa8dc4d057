package routes

import (
	"rentify/internal/controllers"
	"rentify/internal/middleware"
	"rentify/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterModeratorRoutes(router *gin.Engine, moderatorController *controllers.ModeratorController) {
	moderatorRoutes := router.Group("/api/v1/moderators")
	moderatorRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		moderatorRoutes.POST("/", moderatorController.CreateModerator)
	}
}

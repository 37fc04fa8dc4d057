package routes

import (
	"rentify/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutes := router.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authController.Login)
	}
}

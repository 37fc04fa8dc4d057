package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify/internal/services"
	"rentify/internal/utils"
)

type AuthController struct {
	consumers *services.ConsumerService
}

func NewAuthController(consumers *services.ConsumerService) *AuthController {
	return &AuthController{consumers: consumers}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	consumer, err := ac.consumers.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user associated with this email",
		})
		return
	}

	if !utils.VerifyPassword(req.Password, consumer.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Incorrect email or password",
		})
		return
	}

	token, err := utils.GenerateToken(consumer.ID, consumer.Email, consumer.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate token",
			"error":   "Internal server error",
		})
		return
	}

	if err := ac.consumers.RecordLogin(consumer); err != nil {
		respondError(c, err, "Failed to record login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"data": gin.H{
			"token": token,
			"user":  consumer,
		},
	})
}

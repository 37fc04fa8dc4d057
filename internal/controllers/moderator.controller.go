package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/services"
)

type ModeratorController struct {
	consumers *services.ConsumerService
}

func NewModeratorController(consumers *services.ConsumerService) *ModeratorController {
	return &ModeratorController{consumers: consumers}
}

type createModeratorRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateModerator registers a moderator account. Admin only; wired through
// RequireRoles in the route registration.
func (mc *ModeratorController) CreateModerator(c *gin.Context) {
	var req createModeratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	moderator, err := mc.consumers.Register(services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}, models.RoleModerator)
	if err != nil {
		respondError(c, err, "Failed to create moderator")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Moderator created successfully",
		"data":    moderator,
	})
}

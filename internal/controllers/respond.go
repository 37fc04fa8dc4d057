package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
)

// respondError maps core error kinds to HTTP statuses. Storage failures
// stay opaque to the caller.
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
		detail = err.Error()
	case errors.Is(err, models.ErrDuplicate):
		status = http.StatusConflict
		detail = err.Error()
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, models.ErrAccessDenied):
		status = http.StatusForbidden
		detail = err.Error()
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}

func respondInvalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid identifier",
		"error":   "ID must be a valid positive integer",
	})
}

func pageData(key string, items interface{}, page, size int, total int64) gin.H {
	if size <= 0 {
		size = 20
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return gin.H{
		key:           items,
		"currentPage": page,
		"totalItems":  total,
		"totalPages":  totalPages,
	}
}

// actor returns the authenticated user id and role set by AuthMiddleware.
func actor(c *gin.Context) (uint, models.Role) {
	id, _ := c.Get("user_id")
	role, _ := c.Get("role")
	userID, _ := id.(uint)
	userRole, _ := role.(models.Role)
	return userID, userRole
}

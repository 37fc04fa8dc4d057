package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/services"
)

type TenantController struct {
	consumers *services.ConsumerService
}

func NewTenantController(consumers *services.ConsumerService) *TenantController {
	return &TenantController{consumers: consumers}
}

func (tc *TenantController) Register(c *gin.Context) {
	var req registerConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, err, "Invalid request data")
		return
	}

	tenant, err := tc.consumers.Register(input, models.RoleTenant)
	if err != nil {
		respondError(c, err, "Failed to register tenant")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Tenant registered successfully",
		"data":    tenant,
	})
}

// GetTenants lists tenants filtered by search flag, status and gender.
// Unknown enum values in the query fail with a validation error.
func (tc *TenantController) GetTenants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	var filter repository.TenantFilter
	if raw := c.Query("inSearch"); raw != "" {
		inSearch, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, models.ValidationError("invalid inSearch value %q", raw), "Invalid filter")
			return
		}
		filter.InSearch = &inSearch
	}
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseConsumerStatus(raw)
		if err != nil {
			respondError(c, err, "Invalid filter")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("gender"); raw != "" {
		gender, err := models.ParseGender(raw)
		if err != nil {
			respondError(c, err, "Invalid filter")
			return
		}
		filter.Gender = &gender
	}

	tenants, total, err := tc.consumers.FindTenants(filter, page, size)
	if err != nil {
		respondError(c, err, "Failed to retrieve tenants")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tenants retrieved successfully",
		"data":    pageData("tenants", tenants, page, size, total),
	})
}

func (tc *TenantController) GetTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	tenant, err := tc.consumers.Find(uint(id))
	if err != nil {
		respondError(c, err, "Tenant not found")
		return
	}
	if !tenant.IsTenant() {
		respondError(c, models.NotFoundError("Tenant", uint(id)), "Tenant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tenant retrieved successfully",
		"data":    tenant,
	})
}

func (tc *TenantController) UpdateTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, uint(id)) {
		respondError(c, models.AccessDeniedError("cannot modify another user's account"), "Access denied")
		return
	}

	var req updateConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	tenant, err := tc.consumers.Find(uint(id))
	if err != nil {
		respondError(c, err, "Tenant not found")
		return
	}

	tenant.FirstName = req.FirstName
	tenant.LastName = req.LastName
	tenant.Phone = req.Phone
	if req.InSearch != nil {
		tenant.InSearch = *req.InSearch
	}
	if err := tc.consumers.Update(tenant); err != nil {
		respondError(c, err, "Failed to update tenant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tenant updated successfully",
		"data":    tenant,
	})
}

func (tc *TenantController) DeleteTenant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, uint(id)) {
		respondError(c, models.AccessDeniedError("cannot delete another user's account"), "Access denied")
		return
	}

	if err := tc.consumers.Remove(uint(id)); err != nil {
		respondError(c, err, "Failed to delete tenant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tenant deleted successfully",
		"data":    nil,
	})
}

func (tc *TenantController) GetFavorites(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, uint(id)) {
		respondError(c, models.AccessDeniedError("cannot view another tenant's favorites"), "Access denied")
		return
	}

	favorites, err := tc.consumers.GetFavorites(uint(id))
	if err != nil {
		respondError(c, err, "Failed to retrieve favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Favorites retrieved successfully",
		"data":    favorites,
	})
}

type favoriteRequest struct {
	PropertyID uint `json:"property_id" binding:"required"`
}

func (tc *TenantController) AddFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, uint(id)) {
		respondError(c, models.AccessDeniedError("cannot modify another tenant's favorites"), "Access denied")
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := tc.consumers.AddFavorite(uint(id), req.PropertyID); err != nil {
		respondError(c, err, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Favorite added successfully",
		"data":    nil,
	})
}

func (tc *TenantController) RemoveFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}
	propertyID, err := strconv.ParseUint(c.Param("propertyId"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, uint(id)) {
		respondError(c, models.AccessDeniedError("cannot modify another tenant's favorites"), "Access denied")
		return
	}

	if err := tc.consumers.RemoveFavorite(uint(id), uint(propertyID)); err != nil {
		respondError(c, err, "Failed to remove favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Favorite removed successfully",
		"data":    nil,
	})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/services"
)

type PropertyController struct {
	properties *services.PropertyService
}

func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

// GetProperties lists properties. Every present filter key AND-composes;
// bad enum values fail with a validation error instead of being ignored.
func (pc *PropertyController) GetProperties(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	var filter repository.PropertyFilter
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParsePublicationStatus(raw)
		if err != nil {
			respondError(c, err, "Invalid filter")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("cityId"); raw != "" {
		cityID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, models.ValidationError("invalid cityId value %q", raw), "Invalid filter")
			return
		}
		id := uint(cityID)
		filter.CityID = &id
	}
	if raw := c.Query("propertyType"); raw != "" {
		propertyType, err := models.ParsePropertyType(raw)
		if err != nil {
			respondError(c, err, "Invalid filter")
			return
		}
		filter.Type = &propertyType
	}
	if raw := c.Query("minSquare"); raw != "" {
		minSquare, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, models.ValidationError("invalid minSquare value %q", raw), "Invalid filter")
			return
		}
		filter.MinSquare = &minSquare
	}
	if raw := c.Query("maxSquare"); raw != "" {
		maxSquare, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(c, models.ValidationError("invalid maxSquare value %q", raw), "Invalid filter")
			return
		}
		filter.MaxSquare = &maxSquare
	}
	if raw := c.Query("isAvailable"); raw != "" {
		isAvailable, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, models.ValidationError("invalid isAvailable value %q", raw), "Invalid filter")
			return
		}
		filter.IsAvailable = &isAvailable
	}
	if raw := c.Query("ownerId"); raw != "" {
		ownerID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, models.ValidationError("invalid ownerId value %q", raw), "Invalid filter")
			return
		}
		id := uint(ownerID)
		filter.OwnerID = &id
	}

	properties, total, err := pc.properties.FindAll(filter, page, size)
	if err != nil {
		respondError(c, err, "Failed to retrieve properties")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Properties retrieved successfully",
		"data":    pageData("properties", properties, page, size, total),
	})
}

func (pc *PropertyController) GetProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	property, err := pc.properties.Find(uint(id))
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property retrieved successfully",
		"data":    property,
	})
}

type createPropertyRequest struct {
	CityID      uint    `json:"city_id" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Square      float64 `json:"square" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Street      string  `json:"street" binding:"required"`
	PostalCode  string  `json:"postal_code" binding:"required"`
}

func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	propertyType, err := models.ParsePropertyType(req.Type)
	if err != nil {
		respondError(c, err, "Invalid request data")
		return
	}

	actorID, _ := actor(c)
	property, err := pc.properties.Create(services.PropertyInput{
		OwnerID:     actorID,
		CityID:      req.CityID,
		Type:        propertyType,
		Square:      req.Square,
		Description: req.Description,
		Street:      req.Street,
		PostalCode:  req.PostalCode,
	})
	if err != nil {
		respondError(c, err, "Failed to create property")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Property created successfully",
		"data":    property,
	})
}

type updatePropertyRequest struct {
	CityID      uint    `json:"city_id" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Square      float64 `json:"square" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Street      string  `json:"street" binding:"required"`
	PostalCode  string  `json:"postal_code" binding:"required"`
	IsAvailable *bool   `json:"is_available"`
}

func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req updatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	property, err := pc.properties.Find(uint(id))
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, property.OwnerID) {
		respondError(c, models.AccessDeniedError("cannot modify another landlord's property"), "Access denied")
		return
	}

	propertyType, err := models.ParsePropertyType(req.Type)
	if err != nil {
		respondError(c, err, "Invalid request data")
		return
	}

	property.CityID = req.CityID
	property.Type = propertyType
	property.Square = req.Square
	property.Description = req.Description
	property.Street = req.Street
	property.PostalCode = req.PostalCode
	if req.IsAvailable != nil {
		property.IsAvailable = *req.IsAvailable
	}

	if err := pc.properties.Update(property); err != nil {
		respondError(c, err, "Failed to update property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property updated successfully",
		"data":    property,
	})
}

func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	property, err := pc.properties.Find(uint(id))
	if err != nil {
		respondError(c, err, "Property not found")
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, property.OwnerID) {
		respondError(c, models.AccessDeniedError("cannot delete another landlord's property"), "Access denied")
		return
	}

	if err := pc.properties.Remove(uint(id)); err != nil {
		respondError(c, err, "Failed to delete property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property deleted successfully",
		"data":    nil,
	})
}

func (pc *PropertyController) PublishProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := pc.properties.Publish(uint(id)); err != nil {
		respondError(c, err, "Failed to publish property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property published successfully",
		"data":    nil,
	})
}

func (pc *PropertyController) ModerateProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := pc.properties.Moderate(uint(id)); err != nil {
		respondError(c, err, "Failed to send property to moderation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Property sent to moderation",
		"data":    nil,
	})
}

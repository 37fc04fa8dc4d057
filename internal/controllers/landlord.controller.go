package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/services"
)

type LandlordController struct {
	consumers  *services.ConsumerService
	properties *services.PropertyService
}

func NewLandlordController(consumers *services.ConsumerService, properties *services.PropertyService) *LandlordController {
	return &LandlordController{consumers: consumers, properties: properties}
}

type registerConsumerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	InSearch  bool   `json:"in_search"`
}

func (req *registerConsumerRequest) toInput() (services.RegisterInput, error) {
	gender, err := models.ParseGender(req.Gender)
	if err != nil {
		return services.RegisterInput{}, err
	}
	return services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Gender:    gender,
		InSearch:  req.InSearch,
	}, nil
}

func (lc *LandlordController) Register(c *gin.Context) {
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

	landlord, err := lc.consumers.Register(input, models.RoleLandlord)
	if err != nil {
		respondError(c, err, "Failed to register landlord")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Landlord registered successfully",
		"data":    landlord,
	})
}

func (lc *LandlordController) GetLandlords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	landlords, total, err := lc.consumers.FindLandlords(page, size)
	if err != nil {
		respondError(c, err, "Failed to retrieve landlords")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Landlords retrieved successfully",
		"data":    pageData("landlords", landlords, page, size, total),
	})
}

func (lc *LandlordController) GetLandlord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	landlord, err := lc.consumers.Find(uint(id))
	if err != nil {
		respondError(c, err, "Landlord not found")
		return
	}
	if !landlord.IsLandlord() {
		respondError(c, models.NotFoundError("Landlord", uint(id)), "Landlord not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Landlord retrieved successfully",
		"data":    landlord,
	})
}

type updateConsumerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	InSearch  *bool  `json:"in_search"`
}

func (lc *LandlordController) UpdateLandlord(c *gin.Context) {
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

	landlord, err := lc.consumers.Find(uint(id))
	if err != nil {
		respondError(c, err, "Landlord not found")
		return
	}

	landlord.FirstName = req.FirstName
	landlord.LastName = req.LastName
	landlord.Phone = req.Phone
	if err := lc.consumers.Update(landlord); err != nil {
		respondError(c, err, "Failed to update landlord")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Landlord updated successfully",
		"data":    landlord,
	})
}

func (lc *LandlordController) DeleteLandlord(c *gin.Context) {
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

	if err := lc.consumers.Remove(uint(id)); err != nil {
		respondError(c, err, "Failed to delete landlord")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Landlord deleted successfully",
		"data":    nil,
	})
}

func (lc *LandlordController) GetLandlordProperties(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	ownerID := uint(id)
	filter := repository.PropertyFilter{OwnerID: &ownerID}
	properties, total, err := lc.properties.FindAll(filter, page, size)
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

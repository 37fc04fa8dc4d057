package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/services"
)

type CityController struct {
	cities *services.CityService
}

func NewCityController(cities *services.CityService) *CityController {
	return &CityController{cities: cities}
}

type cityRequest struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CityController) GetCities(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	name := c.Query("name")

	cities, total, err := cc.cities.FindAll(name, page, size)
	if err != nil {
		respondError(c, err, "Failed to retrieve cities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Cities retrieved successfully",
		"data":    pageData("cities", cities, page, size, total),
	})
}

func (cc *CityController) GetCity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	city, err := cc.cities.Find(uint(id))
	if err != nil {
		respondError(c, err, "City not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "City retrieved successfully",
		"data":    city,
	})
}

func (cc *CityController) CreateCity(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	city, err := cc.cities.Create(req.Name)
	if err != nil {
		respondError(c, err, "Failed to create city")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "City created successfully",
		"data":    city,
	})
}

func (cc *CityController) UpdateCity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	city, err := cc.cities.Update(uint(id), req.Name)
	if err != nil {
		respondError(c, err, "Failed to update city")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "City updated successfully",
		"data":    city,
	})
}

func (cc *CityController) DeleteCity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := cc.cities.Remove(uint(id)); err != nil {
		respondError(c, err, "Failed to delete city")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "City deleted successfully",
		"data":    nil,
	})
}

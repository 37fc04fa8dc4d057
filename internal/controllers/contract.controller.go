package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/services"
)

const dateLayout = "2006-01-02"

type ContractController struct {
	contracts *services.ContractService
}

func NewContractController(contracts *services.ContractService) *ContractController {
	return &ContractController{contracts: contracts}
}

func (cc *ContractController) GetContracts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	var filter repository.ContractFilter
	if raw := c.Query("fromDate"); raw != "" {
		fromDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondError(c, models.ValidationError("invalid fromDate value %q", raw), "Invalid filter")
			return
		}
		filter.FromDate = &fromDate
	}
	if raw := c.Query("toDate"); raw != "" {
		toDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondError(c, models.ValidationError("invalid toDate value %q", raw), "Invalid filter")
			return
		}
		filter.ToDate = &toDate
	}
	if raw := c.Query("propertyId"); raw != "" {
		propertyID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, models.ValidationError("invalid propertyId value %q", raw), "Invalid filter")
			return
		}
		id := uint(propertyID)
		filter.PropertyID = &id
	}

	contracts, total, err := cc.contracts.FindAll(filter, page, size)
	if err != nil {
		respondError(c, err, "Failed to retrieve contracts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contracts retrieved successfully",
		"data":    pageData("contracts", contracts, page, size, total),
	})
}

func (cc *ContractController) GetContract(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	contract, err := cc.contracts.Find(uint(id))
	if err != nil {
		respondError(c, err, "Contract not found")
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanViewContract(actorID, actorRole, contract) {
		respondError(c, models.AccessDeniedError("cannot access a contract of another consumer"), "Access denied")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contract retrieved successfully",
		"data":    contract,
	})
}

type createContractRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	TenantID   uint   `json:"tenant_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

func (cc *ContractController) CreateContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, req.TenantID) {
		respondError(c, models.AccessDeniedError("cannot create contracts for other users"), "Access denied")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(c, models.ValidationError("invalid start_date value %q", req.StartDate), "Invalid request data")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(c, models.ValidationError("invalid end_date value %q", req.EndDate), "Invalid request data")
		return
	}

	contract, err := cc.contracts.Create(req.PropertyID, req.TenantID, startDate, endDate)
	if err != nil {
		respondError(c, err, "Failed to create contract")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Contract created successfully",
		"data":    contract,
	})
}

type updateContractRequest struct {
	ID        uint   `json:"id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (cc *ContractController) UpdateContract(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if uint(id) != req.ID {
		respondError(c, models.ValidationError("contract identifier in the data does not match the request URL"), "Invalid request data")
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(c, models.ValidationError("invalid start_date value %q", req.StartDate), "Invalid request data")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(c, models.ValidationError("invalid end_date value %q", req.EndDate), "Invalid request data")
		return
	}

	contract, err := cc.contracts.Update(uint(id), startDate, endDate)
	if err != nil {
		respondError(c, err, "Failed to update contract")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contract updated successfully",
		"data":    contract,
	})
}

func (cc *ContractController) DeleteContract(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := cc.contracts.Remove(uint(id)); err != nil {
		respondError(c, err, "Failed to delete contract")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Contract deleted successfully",
		"data":    nil,
	})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/services"
)

// ConsumerController serves the endpoints shared by tenants and landlords:
// the reviews about a consumer, their contracts, their aggregate rating,
// and the moderation actions on their account.
type ConsumerController struct {
	consumers *services.ConsumerService
	reviews   *services.ReviewService
	contracts *services.ContractService
}

func NewConsumerController(
	consumers *services.ConsumerService,
	reviews *services.ReviewService,
	contracts *services.ContractService,
) *ConsumerController {
	return &ConsumerController{
		consumers: consumers,
		reviews:   reviews,
		contracts: contracts,
	}
}

func (cc *ConsumerController) GetConsumerReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	if _, err := cc.consumers.Find(uint(id)); err != nil {
		respondError(c, err, "Consumer not found")
		return
	}

	reviewedID := uint(id)
	status := models.StatusPublished
	filter := repository.ReviewFilter{ReviewedID: &reviewedID, Status: &status}
	reviews, total, err := cc.reviews.FindAll(filter, page, size)
	if err != nil {
		respondError(c, err, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reviews retrieved successfully",
		"data":    pageData("reviews", reviews, page, size, total),
	})
}

func (cc *ConsumerController) GetConsumerContracts(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	actorID, actorRole := actor(c)
	if !services.CanManage(actorID, actorRole, uint(id)) {
		respondError(c, models.AccessDeniedError("cannot view another consumer's contracts"), "Access denied")
		return
	}

	consumer, err := cc.consumers.Find(uint(id))
	if err != nil {
		respondError(c, err, "Consumer not found")
		return
	}

	consumerID := uint(id)
	var filter repository.ContractFilter
	if consumer.IsLandlord() {
		filter.LandlordID = &consumerID
	} else {
		filter.TenantID = &consumerID
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

func (cc *ConsumerController) GetConsumerRating(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	rating, err := cc.consumers.GetRating(uint(id))
	if err != nil {
		respondError(c, err, "Failed to retrieve rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Rating retrieved successfully",
		"data":    gin.H{"rating": rating},
	})
}

func (cc *ConsumerController) BlockConsumer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := cc.consumers.Block(uint(id)); err != nil {
		respondError(c, err, "Failed to block consumer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumer blocked successfully",
		"data":    nil,
	})
}

func (cc *ConsumerController) ActivateConsumer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := cc.consumers.Activate(uint(id)); err != nil {
		respondError(c, err, "Failed to activate consumer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumer activated successfully",
		"data":    nil,
	})
}

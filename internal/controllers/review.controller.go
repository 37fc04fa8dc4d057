package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/services"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (rc *ReviewController) GetReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	review, err := rc.reviews.Find(uint(id))
	if err != nil {
		respondError(c, err, "Review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review retrieved successfully",
		"data":    review,
	})
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	var filter repository.ReviewFilter
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParsePublicationStatus(raw)
		if err != nil {
			respondError(c, err, "Invalid filter")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("authorId"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, models.ValidationError("invalid authorId value %q", raw), "Invalid filter")
			return
		}
		id := uint(authorID)
		filter.AuthorID = &id
	}
	if raw := c.Query("reviewedId"); raw != "" {
		reviewedID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, models.ValidationError("invalid reviewedId value %q", raw), "Invalid filter")
			return
		}
		id := uint(reviewedID)
		filter.ReviewedID = &id
	}
	if raw := c.Query("contractId"); raw != "" {
		contractID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, models.ValidationError("invalid contractId value %q", raw), "Invalid filter")
			return
		}
		id := uint(contractID)
		filter.ContractID = &id
	}

	reviews, total, err := rc.reviews.FindAll(filter, page, size)
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

type createReviewRequest struct {
	ContractID  uint   `json:"contract_id" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// The author is always the authenticated user; nobody reviews on
	// someone else's behalf.
	actorID, _ := actor(c)
	review, err := rc.reviews.Create(req.ContractID, actorID, req.Rating, req.Description)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Review created successfully",
		"data":    review,
	})
}

type updateReviewRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if uint(id) != req.ID {
		respondError(c, models.ValidationError("review identifier in the data does not match the request URL"), "Invalid request data")
		return
	}

	review, err := rc.reviews.Update(uint(id), req.Rating, req.Description)
	if err != nil {
		respondError(c, err, "Failed to update review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review updated successfully",
		"data":    review,
	})
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := rc.reviews.Remove(uint(id)); err != nil {
		respondError(c, err, "Failed to delete review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review deleted successfully",
		"data":    nil,
	})
}

func (rc *ReviewController) PublishReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := rc.reviews.Publish(uint(id)); err != nil {
		respondError(c, err, "Failed to publish review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review published successfully",
		"data":    nil,
	})
}

func (rc *ReviewController) ModerateReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := rc.reviews.Moderate(uint(id)); err != nil {
		respondError(c, err, "Failed to send review to moderation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review sent to moderation",
		"data":    nil,
	})
}

package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type CreateReviewRequest struct {
	VehicleID uint   `json:"vehicle_id" binding:"required"`
	Score     *int   `json:"score" binding:"required"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	Score   *int   `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview records a vehicle review for the acting user
// POST /api/v1/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid review data")
		return
	}

	review, err := ctrl.reviewService.CreateReview(userID, req.VehicleID, *req.Score, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("Review created", map[string]interface{}{
		"review_id":  review.ID,
		"vehicle_id": req.VehicleID,
		"user_id":    userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  review,
	})
}

// UpdateReview rewrites the acting user's review of a vehicle
// PUT /api/v1/reviews/:id (path param is the vehicle ID)
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid vehicle ID")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid review data")
		return
	}

	review, err := ctrl.reviewService.UpdateReview(userID, uint(id), *req.Score, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// DeleteReview removes the acting user's review of a vehicle
// DELETE /api/v1/reviews/:id (path param is the vehicle ID)
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid vehicle ID")
		return
	}

	if err := ctrl.reviewService.DeleteReview(userID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// GetVehicleReviews lists a vehicle's reviews newest first
// GET /api/v1/vehicles/:id/reviews
func (ctrl *ReviewController) GetVehicleReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid vehicle ID")
		return
	}

	reviews, err := ctrl.reviewService.ListReviewsByVehicle(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// MyReviews lists the acting user's reviews
// GET /api/v1/reviews/mine
func (ctrl *ReviewController) MyReviews(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	reviews, err := ctrl.reviewService.ListReviewsByUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

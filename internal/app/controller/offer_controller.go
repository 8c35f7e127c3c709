package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type OfferController struct {
	offerService service.OfferService
}

func NewOfferController(offerService service.OfferService) *OfferController {
	return &OfferController{
		offerService: offerService,
	}
}

type CreateOfferRequest struct {
	VehicleID uint    `json:"vehicle_id" binding:"required"`
	Stock     int     `json:"stock" binding:"required,min=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
}

// CreateOffer publishes an offer for the acting dealership user
// POST /api/v1/offers
func (ctrl *OfferController) CreateOffer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid offer request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid offer data")
		return
	}

	offer, err := ctrl.offerService.CreateOffer(userID, service.CreateOfferInput{
		VehicleID: req.VehicleID,
		Stock:     req.Stock,
		Price:     req.Price,
		Currency:  req.Currency,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("Offer published", map[string]interface{}{
		"offer_id": offer.ID,
		"user_id":  userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Offer published successfully",
		"offer":   offer,
	})
}

// ListOffers lists all published offers
// GET /api/v1/offers
func (ctrl *OfferController) ListOffers(c *gin.Context) {
	offers, err := ctrl.offerService.ListOffers()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

// GetOffer returns one offer
// GET /api/v1/offers/:id
func (ctrl *OfferController) GetOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid offer ID")
		return
	}

	offer, err := ctrl.offerService.GetOfferByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offer": offer})
}

// MyOffers lists the acting dealership user's own offers
// GET /api/v1/offers/mine
func (ctrl *OfferController) MyOffers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	offers, err := ctrl.offerService.ListOffersForActor(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

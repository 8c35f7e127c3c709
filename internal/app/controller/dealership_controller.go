package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type DealershipController struct {
	dealershipService service.DealershipService
	offerService      service.OfferService
}

func NewDealershipController(
	dealershipService service.DealershipService,
	offerService service.OfferService,
) *DealershipController {
	return &DealershipController{
		dealershipService: dealershipService,
		offerService:      offerService,
	}
}

type CreateDealershipRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxID         string `json:"tax_id" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	ManagerUserID *uint  `json:"manager_user_id"`
}

type LinkUserRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// CreateDealership registers a dealership (admin only)
// POST /api/v1/dealerships
func (ctrl *DealershipController) CreateDealership(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateDealershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid dealership data")
		return
	}

	dealership, err := ctrl.dealershipService.CreateDealership(service.CreateDealershipInput{
		Name:          req.Name,
		TaxID:         req.TaxID,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		ManagerUserID: req.ManagerUserID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("Dealership created", map[string]interface{}{
		"dealership_id": dealership.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Dealership created successfully",
		"dealership": dealership,
	})
}

// ListDealerships lists dealerships
// GET /api/v1/dealerships?active=true
func (ctrl *DealershipController) ListDealerships(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	dealerships, err := ctrl.dealershipService.ListDealerships(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dealerships": dealerships,
		"count":       len(dealerships),
	})
}

// GetDealership returns one dealership
// GET /api/v1/dealerships/:id
func (ctrl *DealershipController) GetDealership(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid dealership ID")
		return
	}

	dealership, err := ctrl.dealershipService.GetDealershipByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dealership": dealership})
}

// GetDealershipOffers lists a dealership's published offers
// GET /api/v1/dealerships/:id/offers
func (ctrl *DealershipController) GetDealershipOffers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid dealership ID")
		return
	}

	offers, err := ctrl.offerService.ListOffersByDealership(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

// LinkUser attaches a dealership user to a dealership (admin only)
// POST /api/v1/dealerships/:id/users
func (ctrl *DealershipController) LinkUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid dealership ID")
		return
	}

	var req LinkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid link data")
		return
	}

	user, err := ctrl.dealershipService.LinkUser(uint(id), req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("User linked to dealership", map[string]interface{}{
		"dealership_id": id,
		"user_id":       user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "User linked successfully",
		"user":    userPayload(user),
	})
}

package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type PurchaseController struct {
	purchaseService service.PurchaseService
}

func NewPurchaseController(purchaseService service.PurchaseService) *PurchaseController {
	return &PurchaseController{
		purchaseService: purchaseService,
	}
}

type PurchaseRequest struct {
	OfferID uint `json:"offer_id" binding:"required"`
	// RequestedPrice overrides the offer's list price when present.
	RequestedPrice *float64 `json:"requested_price" binding:"omitempty,gt=0"`
}

// Purchase buys one unit of an offer for the acting buyer
// POST /api/v1/purchases
func (ctrl *PurchaseController) Purchase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid purchase request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid purchase data")
		return
	}

	purchase, err := ctrl.purchaseService.Purchase(userID, req.OfferID, req.RequestedPrice)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("Purchase completed", map[string]interface{}{
		"purchase_id": purchase.ID,
		"reference":   purchase.Reference,
		"user_id":     userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Purchase completed successfully",
		"purchase": purchase,
	})
}

// GetPurchase returns one purchase
// GET /api/v1/purchases/:id
func (ctrl *PurchaseController) GetPurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid purchase ID")
		return
	}

	purchase, err := ctrl.purchaseService.GetPurchaseByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Buyers only see their own receipts; admins see everything.
	role, _ := middleware.GetUserRole(c)
	if purchase.BuyerID != userID && role != model.RoleAdmin {
		apperrors.Forbidden(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase": purchase})
}

// MyPurchases lists the acting buyer's purchases newest first
// GET /api/v1/purchases/mine
func (ctrl *PurchaseController) MyPurchases(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	purchases, err := ctrl.purchaseService.ListPurchasesByBuyer(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchases": purchases,
		"count":     len(purchases),
	})
}

// MySales lists purchases against the acting dealership user's offers
// GET /api/v1/purchases/sales
func (ctrl *PurchaseController) MySales(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	sales, err := ctrl.purchaseService.ListSalesForActor(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sales": sales,
		"count": len(sales),
	})
}

package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

type SetFavoriteRequest struct {
	OfferID uint `json:"offer_id" binding:"required"`
}

// SetFavorite marks an offer as the acting buyer's favorite, replacing any
// previous one
// PUT /api/v1/favorite
func (ctrl *FavoriteController) SetFavorite(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req SetFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid favorite data")
		return
	}

	favorite, err := ctrl.favoriteService.SetFavorite(userID, req.OfferID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("Favorite set", map[string]interface{}{
		"user_id":  userID,
		"offer_id": req.OfferID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Favorite set successfully",
		"favorite": favorite,
	})
}

// GetFavorite returns the acting buyer's favorite
// GET /api/v1/favorite
func (ctrl *FavoriteController) GetFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	favorite, err := ctrl.favoriteService.GetFavorite(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

// RemoveFavorite clears the acting buyer's favorite of an offer
// DELETE /api/v1/favorite/:id (path param is the offer ID)
func (ctrl *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid offer ID")
		return
	}

	if err := ctrl.favoriteService.RemoveFavorite(userID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
)

type errorMapping struct {
	status  int
	code    string
	message string
}

// serviceErrorTable maps service sentinels onto HTTP responses. Anything
// not listed here is treated as an internal error.
var serviceErrorTable = []struct {
	err     error
	mapping errorMapping
}{
	{service.ErrInvalidCredentials, errorMapping{http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password"}},
	{service.ErrEmailAlreadyExists, errorMapping{http.StatusConflict, apperrors.AuthEmailAlreadyExists, "Email is already registered"}},
	{service.ErrUserNotFound, errorMapping{http.StatusNotFound, apperrors.ResourceNotFound, "User not found"}},
	{service.ErrUserInactive, errorMapping{http.StatusForbidden, apperrors.AuthzForbidden, "Account is inactive"}},

	{service.ErrDealershipNotFound, errorMapping{http.StatusNotFound, apperrors.DealershipNotFound, "Dealership not found"}},
	{service.ErrDealershipInactive, errorMapping{http.StatusUnprocessableEntity, apperrors.DealershipInactive, "Dealership is inactive"}},
	{service.ErrTaxIDAlreadyExists, errorMapping{http.StatusConflict, apperrors.DealershipTaxIDExists, "Tax ID is already registered"}},
	{service.ErrUserAlreadyLinked, errorMapping{http.StatusConflict, apperrors.DealershipUserLinked, "User and dealership links are exclusive"}},
	{service.ErrNotDealershipUser, errorMapping{http.StatusForbidden, apperrors.AuthzDealershipOnly, "Only dealership users may perform this action"}},
	{service.ErrNoDealershipLinked, errorMapping{http.StatusUnprocessableEntity, apperrors.DealershipNotLinked, "User has no linked dealership"}},

	{service.ErrVehicleNotFound, errorMapping{http.StatusNotFound, apperrors.VehicleNotFound, "Vehicle not found"}},
	{service.ErrVehicleAlreadyExists, errorMapping{http.StatusConflict, apperrors.VehicleAlreadyExists, "Vehicle already registered for that brand, model and year"}},

	{service.ErrOfferNotFound, errorMapping{http.StatusNotFound, apperrors.OfferNotFound, "Offer not found"}},
	{service.ErrOfferAlreadyExists, errorMapping{http.StatusConflict, apperrors.OfferAlreadyExists, "Dealership already offers this vehicle"}},
	{service.ErrOutOfStock, errorMapping{http.StatusUnprocessableEntity, apperrors.OfferOutOfStock, "Offer is out of stock"}},
	{service.ErrPriceUnavailable, errorMapping{http.StatusUnprocessableEntity, apperrors.OfferPriceUnavailable, "No price available for this purchase"}},
	{service.ErrPurchaseNotFound, errorMapping{http.StatusNotFound, apperrors.ResourceNotFound, "Purchase not found"}},

	{service.ErrFavoriteNotFound, errorMapping{http.StatusNotFound, apperrors.FavoriteNotFound, "No favorite set"}},
	{service.ErrNotBuyer, errorMapping{http.StatusForbidden, apperrors.AuthzBuyerOnly, "Only buyers may perform this action"}},

	{service.ErrReviewNotFound, errorMapping{http.StatusNotFound, apperrors.ReviewNotFound, "Review not found"}},
	{service.ErrReviewAlreadyExists, errorMapping{http.StatusConflict, apperrors.ReviewAlreadyExists, "Vehicle already reviewed by this user"}},
	{service.ErrInvalidScore, errorMapping{http.StatusUnprocessableEntity, apperrors.ReviewInvalidScore, "Score must be between 0 and 10"}},
	{service.ErrNotReviewAuthor, errorMapping{http.StatusForbidden, apperrors.AuthzAuthorOnly, "Only the author may modify a review"}},
}

// respondServiceError translates a service error into the wire response.
func respondServiceError(c *gin.Context, err error) {
	for _, entry := range serviceErrorTable {
		if errors.Is(err, entry.err) {
			apperrors.RespondWithError(c, entry.mapping.status, entry.mapping.code, entry.mapping.message)
			return
		}
	}
	apperrors.InternalError(c, "")
}

package errors

// Error code constants returned to clients.
// Format: CATEGORY_SPECIFIC_DETAIL; the frontend maps them to messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden      = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound   = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly      = "AUTHZ_ADMIN_ONLY"
	AuthzDealershipOnly = "AUTHZ_DEALERSHIP_ONLY"
	AuthzBuyerOnly      = "AUTHZ_BUYER_ONLY"
	AuthzAuthorOnly     = "AUTHZ_AUTHOR_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"

	// ==================== Dealerships (DEALERSHIP_) ====================
	DealershipNotFound    = "DEALERSHIP_NOT_FOUND"
	DealershipInactive    = "DEALERSHIP_INACTIVE"
	DealershipNotLinked   = "DEALERSHIP_NOT_LINKED"
	DealershipTaxIDExists = "DEALERSHIP_TAX_ID_EXISTS"
	DealershipUserLinked  = "DEALERSHIP_USER_ALREADY_LINKED"

	// ==================== Offers (OFFER_) ====================
	OfferNotFound         = "OFFER_NOT_FOUND"
	OfferAlreadyExists    = "OFFER_ALREADY_EXISTS"
	OfferOutOfStock       = "OFFER_OUT_OF_STOCK"
	OfferPriceUnavailable = "OFFER_PRICE_UNAVAILABLE"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidScore  = "REVIEW_INVALID_SCORE"
	ReviewAlreadyExists = "REVIEW_ALREADY_EXISTS"

	// ==================== Favorites (FAVORITE_) ====================
	FavoriteNotFound = "FAVORITE_NOT_FOUND"

	// ==================== Vehicles (VEHICLE_) ====================
	VehicleNotFound      = "VEHICLE_NOT_FOUND"
	VehicleAlreadyExists = "VEHICLE_ALREADY_EXISTS"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)

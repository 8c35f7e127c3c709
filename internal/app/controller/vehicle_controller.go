package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/service"
	apperrors "github.com/leadiaz/compra-tu-auto-app-backend/internal/errors"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/middleware"
)

type VehicleController struct {
	vehicleService service.VehicleService
	offerService   service.OfferService
	reviewService  service.ReviewService
}

func NewVehicleController(
	vehicleService service.VehicleService,
	offerService service.OfferService,
	reviewService service.ReviewService,
) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
		offerService:   offerService,
		reviewService:  reviewService,
	}
}

type CreateVehicleRequest struct {
	Brand     string `json:"brand" binding:"required"`
	Model     string `json:"model" binding:"required"`
	ModelYear int    `json:"model_year" binding:"required,min=1900"`
}

// CreateVehicle registers a vehicle in the catalog (admin only)
// POST /api/v1/vehicles
func (ctrl *VehicleController) CreateVehicle(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid vehicle data")
		return
	}

	vehicle, err := ctrl.vehicleService.CreateVehicle(req.Brand, req.Model, req.ModelYear)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	log.Info("Vehicle created", map[string]interface{}{
		"vehicle_id": vehicle.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vehicle created successfully",
		"vehicle": vehicle,
	})
}

// ListVehicles lists the catalog newest first
// GET /api/v1/vehicles
func (ctrl *VehicleController) ListVehicles(c *gin.Context) {
	vehicles, err := ctrl.vehicleService.ListVehicles()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// GetVehicle returns one vehicle with its review standing
// GET /api/v1/vehicles/:id
func (ctrl *VehicleController) GetVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid vehicle ID")
		return
	}

	vehicle, err := ctrl.vehicleService.GetVehicleByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	average, count, err := ctrl.reviewService.VehicleScore(vehicle.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle":       vehicle,
		"average_score": average,
		"review_count":  count,
	})
}

// GetVehicleOffers lists offers for a vehicle, cheapest first
// GET /api/v1/vehicles/:id/offers
func (ctrl *VehicleController) GetVehicleOffers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid vehicle ID")
		return
	}

	offers, err := ctrl.offerService.ListOffersByVehicle(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

// TopRanked lists the best reviewed vehicles
// GET /api/v1/vehicles/top?limit=5
func (ctrl *VehicleController) TopRanked(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid limit")
			return
		}
		limit = parsed
	}

	rankings, err := ctrl.reviewService.TopRankedVehicles(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rankings": rankings,
		"count":    len(rankings),
	})
}

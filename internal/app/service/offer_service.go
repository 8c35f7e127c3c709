package service

import (
	"errors"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOfferNotFound      = errors.New("offer not found")
	ErrOfferAlreadyExists = errors.New("dealership already offers this vehicle")
	ErrNoDealershipLinked = errors.New("user has no linked dealership")
	ErrDealershipInactive = errors.New("dealership is inactive")
)

type CreateOfferInput struct {
	VehicleID uint
	Stock     int
	Price     float64
	Currency  string
}

type OfferService interface {
	// CreateOffer publishes a vehicle offer on behalf of the acting user's
	// dealership. Only dealership users with an active, linked dealership
	// may publish, and a dealership can offer a given vehicle only once.
	CreateOffer(actorID uint, input CreateOfferInput) (*model.Offer, error)
	GetOfferByID(id uint) (*model.Offer, error)
	ListOffers() ([]model.Offer, error)
	ListOffersByDealership(dealershipID uint) ([]model.Offer, error)
	ListOffersByVehicle(vehicleID uint) ([]model.Offer, error)
	ListOffersForActor(actorID uint) ([]model.Offer, error)
}

type offerService struct {
	offerRepo      repository.OfferRepository
	vehicleRepo    repository.VehicleRepository
	dealershipRepo repository.DealershipRepository
	userRepo       repository.UserRepository
}

func NewOfferService(
	offerRepo repository.OfferRepository,
	vehicleRepo repository.VehicleRepository,
	dealershipRepo repository.DealershipRepository,
	userRepo repository.UserRepository,
) OfferService {
	return &offerService{
		offerRepo:      offerRepo,
		vehicleRepo:    vehicleRepo,
		dealershipRepo: dealershipRepo,
		userRepo:       userRepo,
	}
}

// actingDealership resolves the dealership the user publishes for,
// enforcing role, linkage and active state in that order.
func (s *offerService) actingDealership(actorID uint) (*model.Dealership, error) {
	user, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsDealershipUser() {
		logger.Warn("Offer access denied: user is not a dealership user", map[string]interface{}{
			"user_id": actorID,
			"role":    user.Role,
		})
		return nil, ErrNotDealershipUser
	}
	if user.DealershipID == nil {
		logger.Warn("Offer access denied: no dealership linked", map[string]interface{}{
			"user_id": actorID,
		})
		return nil, ErrNoDealershipLinked
	}

	dealership, err := s.dealershipRepo.FindByID(*user.DealershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealershipNotFound
		}
		return nil, err
	}
	if !dealership.Active {
		logger.Warn("Offer access denied: dealership inactive", map[string]interface{}{
			"user_id":       actorID,
			"dealership_id": dealership.ID,
		})
		return nil, ErrDealershipInactive
	}

	return dealership, nil
}

func (s *offerService) CreateOffer(actorID uint, input CreateOfferInput) (*model.Offer, error) {
	logger.Info("Creating offer", map[string]interface{}{
		"actor_id":   actorID,
		"vehicle_id": input.VehicleID,
	})

	dealership, err := s.actingDealership(actorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.vehicleRepo.FindByID(input.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Offer creation failed: vehicle not found", map[string]interface{}{
				"vehicle_id": input.VehicleID,
			})
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	exists, err := s.offerRepo.ExistsByDealershipAndVehicle(dealership.ID, input.VehicleID)
	if err != nil {
		logger.Error("Failed to check existing offer", err, map[string]interface{}{
			"dealership_id": dealership.ID,
			"vehicle_id":    input.VehicleID,
		})
		return nil, err
	}
	if exists {
		logger.Warn("Offer creation failed: dealership already offers vehicle", map[string]interface{}{
			"dealership_id": dealership.ID,
			"vehicle_id":    input.VehicleID,
		})
		return nil, ErrOfferAlreadyExists
	}

	currency := input.Currency
	if currency == "" {
		currency = "ARS"
	}

	offer := &model.Offer{
		DealershipID: dealership.ID,
		VehicleID:    input.VehicleID,
		Stock:        input.Stock,
		Price:        input.Price,
		Currency:     currency,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, err
	}

	logger.Info("Offer created successfully", map[string]interface{}{
		"offer_id":      offer.ID,
		"dealership_id": dealership.ID,
		"vehicle_id":    input.VehicleID,
		"stock":         offer.Stock,
	})
	return offer, nil
}

func (s *offerService) GetOfferByID(id uint) (*model.Offer, error) {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *offerService) ListOffers() ([]model.Offer, error) {
	return s.offerRepo.List()
}

func (s *offerService) ListOffersByDealership(dealershipID uint) ([]model.Offer, error) {
	if _, err := s.dealershipRepo.FindByID(dealershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDealershipNotFound
		}
		return nil, err
	}
	return s.offerRepo.FindByDealershipID(dealershipID)
}

func (s *offerService) ListOffersByVehicle(vehicleID uint) ([]model.Offer, error) {
	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return s.offerRepo.FindByVehicleID(vehicleID)
}

// ListOffersForActor lists the offers of the acting dealership user's own
// dealership.
func (s *offerService) ListOffersForActor(actorID uint) ([]model.Offer, error) {
	dealership, err := s.actingDealership(actorID)
	if err != nil {
		return nil, err
	}
	return s.offerRepo.FindByDealershipID(dealership.ID)
}

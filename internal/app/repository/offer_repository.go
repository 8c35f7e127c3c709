package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

type OfferRepository interface {
	Create(offer *model.Offer) error
	FindByID(id uint) (*model.Offer, error)
	FindByDealershipID(dealershipID uint) ([]model.Offer, error)
	FindByVehicleID(vehicleID uint) ([]model.Offer, error)
	ExistsByDealershipAndVehicle(dealershipID, vehicleID uint) (bool, error)
	List() ([]model.Offer, error)
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(offer *model.Offer) error {
	if err := r.db.Create(offer).Error; err != nil {
		logger.Error("Failed to create offer in database", err, map[string]interface{}{
			"dealership_id": offer.DealershipID,
			"vehicle_id":    offer.VehicleID,
		})
		return err
	}

	logger.Debug("Offer created in database", map[string]interface{}{
		"offer_id":      offer.ID,
		"dealership_id": offer.DealershipID,
		"vehicle_id":    offer.VehicleID,
		"stock":         offer.Stock,
	})
	return nil
}

func (r *offerRepository) FindByID(id uint) (*model.Offer, error) {
	var offer model.Offer
	if err := r.db.Preload("Dealership").Preload("Vehicle").First(&offer, id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) FindByDealershipID(dealershipID uint) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.Preload("Vehicle").
		Where("dealership_id = ?", dealershipID).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *offerRepository) FindByVehicleID(vehicleID uint) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.Preload("Dealership").
		Where("vehicle_id = ?", vehicleID).
		Order("price").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *offerRepository) ExistsByDealershipAndVehicle(dealershipID, vehicleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Offer{}).
		Where("dealership_id = ? AND vehicle_id = ?", dealershipID, vehicleID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *offerRepository) List() ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.Preload("Dealership").Preload("Vehicle").
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

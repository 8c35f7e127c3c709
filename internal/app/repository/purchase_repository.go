package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	FindByID(id uint) (*model.Purchase, error)
	FindByReference(reference string) (*model.Purchase, error)
	FindByBuyerID(buyerID uint) ([]model.Purchase, error)
	FindByDealershipID(dealershipID uint) ([]model.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) FindByID(id uint) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Offer").Preload("Offer.Vehicle").Preload("Offer.Dealership").
		First(&purchase, id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindByReference(reference string) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Offer").Preload("Offer.Vehicle").Preload("Offer.Dealership").
		Where("reference = ?", reference).
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindByBuyerID(buyerID uint) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Offer").Preload("Offer.Vehicle").Preload("Offer.Dealership").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC, id DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

// FindByDealershipID lists sales recorded against a dealership's offers.
func (r *purchaseRepository) FindByDealershipID(dealershipID uint) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Offer").Preload("Offer.Vehicle").
		Joins("JOIN offers ON offers.id = purchases.offer_id").
		Where("offers.dealership_id = ?", dealershipID).
		Order("purchases.created_at DESC, purchases.id DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

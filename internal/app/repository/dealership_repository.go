package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

type DealershipRepository interface {
	Create(dealership *model.Dealership) error
	FindByID(id uint) (*model.Dealership, error)
	FindByTaxID(taxID string) (*model.Dealership, error)
	List(activeOnly bool) ([]model.Dealership, error)
	Update(dealership *model.Dealership) error
}

type dealershipRepository struct {
	db *gorm.DB
}

func NewDealershipRepository(db *gorm.DB) DealershipRepository {
	return &dealershipRepository{db: db}
}

func (r *dealershipRepository) Create(dealership *model.Dealership) error {
	if err := r.db.Create(dealership).Error; err != nil {
		logger.Error("Failed to create dealership in database", err, map[string]interface{}{
			"name":   dealership.Name,
			"tax_id": dealership.TaxID,
		})
		return err
	}

	logger.Debug("Dealership created in database", map[string]interface{}{
		"dealership_id": dealership.ID,
		"name":          dealership.Name,
	})
	return nil
}

func (r *dealershipRepository) FindByID(id uint) (*model.Dealership, error) {
	var dealership model.Dealership
	if err := r.db.First(&dealership, id).Error; err != nil {
		return nil, err
	}
	return &dealership, nil
}

func (r *dealershipRepository) FindByTaxID(taxID string) (*model.Dealership, error) {
	var dealership model.Dealership
	if err := r.db.Where("tax_id = ?", taxID).First(&dealership).Error; err != nil {
		return nil, err
	}
	return &dealership, nil
}

func (r *dealershipRepository) List(activeOnly bool) ([]model.Dealership, error) {
	query := r.db.Model(&model.Dealership{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var dealerships []model.Dealership
	if err := query.Order("name").Find(&dealerships).Error; err != nil {
		return nil, err
	}
	return dealerships, nil
}

func (r *dealershipRepository) Update(dealership *model.Dealership) error {
	return r.db.Save(dealership).Error
}

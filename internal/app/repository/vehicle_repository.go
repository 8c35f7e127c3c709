package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(vehicle *model.Vehicle) error
	FindByID(id uint) (*model.Vehicle, error)
	FindByBrandModelYear(brand, vehicleModel string, year int) (*model.Vehicle, error)
	List() ([]model.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(vehicle *model.Vehicle) error {
	if err := r.db.Create(vehicle).Error; err != nil {
		logger.Error("Failed to create vehicle in database", err, map[string]interface{}{
			"brand":      vehicle.Brand,
			"model":      vehicle.Model,
			"model_year": vehicle.ModelYear,
		})
		return err
	}
	return nil
}

func (r *vehicleRepository) FindByID(id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindByBrandModelYear(brand, vehicleModel string, year int) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.Where("brand = ? AND model = ? AND model_year = ?", brand, vehicleModel, year).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// List returns the catalog newest first.
func (r *vehicleRepository) List() ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.Order("created_at DESC, id DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

package service

import (
	"errors"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleAlreadyExists = errors.New("vehicle already exists for brand, model and year")
)

type VehicleService interface {
	CreateVehicle(brand, vehicleModel string, modelYear int) (*model.Vehicle, error)
	GetVehicleByID(id uint) (*model.Vehicle, error)
	ListVehicles() ([]model.Vehicle, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateVehicle(brand, vehicleModel string, modelYear int) (*model.Vehicle, error) {
	logger.Info("Creating vehicle", map[string]interface{}{
		"brand":      brand,
		"model":      vehicleModel,
		"model_year": modelYear,
	})

	existing, err := s.vehicleRepo.FindByBrandModelYear(brand, vehicleModel, modelYear)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing vehicle", err, map[string]interface{}{
			"brand": brand,
			"model": vehicleModel,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Vehicle creation failed: duplicate brand, model and year", map[string]interface{}{
			"brand":      brand,
			"model":      vehicleModel,
			"model_year": modelYear,
		})
		return nil, ErrVehicleAlreadyExists
	}

	vehicle := &model.Vehicle{
		Brand:     brand,
		Model:     vehicleModel,
		ModelYear: modelYear,
	}
	if err := s.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}

	logger.Info("Vehicle created successfully", map[string]interface{}{
		"vehicle_id": vehicle.ID,
	})
	return vehicle, nil
}

func (s *vehicleService) GetVehicleByID(id uint) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles() ([]model.Vehicle, error) {
	return s.vehicleRepo.List()
}

package service

import (
	"testing"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVehicleServiceTest(t *testing.T) VehicleService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewVehicleService(repository.NewVehicleRepository(testDB))
}

func TestVehicleService_CreateVehicle(t *testing.T) {
	vehicleService := setupVehicleServiceTest(t)

	vehicle, err := vehicleService.CreateVehicle("Toyota", "Corolla", 2024)
	require.NoError(t, err)
	assert.NotZero(t, vehicle.ID)

	got, err := vehicleService.GetVehicleByID(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", got.Brand)
}

func TestVehicleService_CreateVehicle_Duplicate(t *testing.T) {
	vehicleService := setupVehicleServiceTest(t)

	_, err := vehicleService.CreateVehicle("Toyota", "Corolla", 2024)
	require.NoError(t, err)

	_, err = vehicleService.CreateVehicle("Toyota", "Corolla", 2024)
	assert.ErrorIs(t, err, ErrVehicleAlreadyExists)

	// Another model year is a different vehicle.
	_, err = vehicleService.CreateVehicle("Toyota", "Corolla", 2023)
	assert.NoError(t, err)
}

func TestVehicleService_GetVehicleByID_NotFound(t *testing.T) {
	vehicleService := setupVehicleServiceTest(t)

	_, err := vehicleService.GetVehicleByID(9999)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestVehicleService_ListVehicles(t *testing.T) {
	vehicleService := setupVehicleServiceTest(t)

	_, err := vehicleService.CreateVehicle("Toyota", "Corolla", 2024)
	require.NoError(t, err)
	_, err = vehicleService.CreateVehicle("Ford", "Focus", 2023)
	require.NoError(t, err)

	vehicles, err := vehicleService.ListVehicles()
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)
}

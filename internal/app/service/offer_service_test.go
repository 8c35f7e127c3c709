package service

import (
	"testing"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type offerFixtures struct {
	dealership *model.Dealership
	dealerUser *model.User
	buyer      *model.User
	admin      *model.User
	vehicle    *model.Vehicle
}

func setupOfferServiceTest(t *testing.T) (OfferService, *gorm.DB, offerFixtures) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	offerRepo := repository.NewOfferRepository(testDB)
	vehicleRepo := repository.NewVehicleRepository(testDB)
	dealershipRepo := repository.NewDealershipRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	offerService := NewOfferService(offerRepo, vehicleRepo, dealershipRepo, userRepo)

	dealership := &model.Dealership{Name: "Autos del Sur", TaxID: "30-11111111-1", Active: true}
	require.NoError(t, testDB.Create(dealership).Error)

	dealerUser := model.NewUser("dealer@example.com", "hash", "Diego", "López", "DEALERSHIP")
	dealerUser.DealershipID = &dealership.ID
	require.NoError(t, testDB.Create(dealerUser).Error)

	buyer := model.NewUser("buyer@example.com", "hash", "Ana", "García", "")
	require.NoError(t, testDB.Create(buyer).Error)

	admin := model.NewUser("admin@example.com", "hash", "Root", "Admin", "ADMIN")
	require.NoError(t, testDB.Create(admin).Error)

	vehicle := &model.Vehicle{Brand: "Toyota", Model: "Corolla", ModelYear: 2024}
	require.NoError(t, testDB.Create(vehicle).Error)

	return offerService, testDB, offerFixtures{
		dealership: dealership,
		dealerUser: dealerUser,
		buyer:      buyer,
		admin:      admin,
		vehicle:    vehicle,
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	offerService, _, f := setupOfferServiceTest(t)

	offer, err := offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{
		VehicleID: f.vehicle.ID,
		Stock:     5,
		Price:     25000000,
	})
	require.NoError(t, err)
	assert.NotZero(t, offer.ID)
	assert.Equal(t, f.dealership.ID, offer.DealershipID)
	assert.Equal(t, 5, offer.Stock)
	assert.Equal(t, "ARS", offer.Currency)
}

func TestOfferService_CreateOffer_AuthorizationMatrix(t *testing.T) {
	offerService, _, f := setupOfferServiceTest(t)

	tests := []struct {
		name    string
		actorID uint
		wantErr error
	}{
		{"buyer cannot publish", f.buyer.ID, ErrNotDealershipUser},
		{"admin cannot publish", f.admin.ID, ErrNotDealershipUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := offerService.CreateOffer(tt.actorID, CreateOfferInput{
				VehicleID: f.vehicle.ID,
				Stock:     1,
				Price:     1000000,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, offer)
		})
	}
}

func TestOfferService_CreateOffer_NoDealershipLinked(t *testing.T) {
	offerService, testDB, f := setupOfferServiceTest(t)

	unlinked := model.NewUser("unlinked@example.com", "hash", "Lucía", "Pérez", "DEALERSHIP")
	require.NoError(t, testDB.Create(unlinked).Error)

	_, err := offerService.CreateOffer(unlinked.ID, CreateOfferInput{
		VehicleID: f.vehicle.ID,
		Stock:     1,
		Price:     1000000,
	})
	assert.ErrorIs(t, err, ErrNoDealershipLinked)
}

func TestOfferService_CreateOffer_InactiveDealership(t *testing.T) {
	offerService, testDB, f := setupOfferServiceTest(t)

	require.NoError(t, testDB.Model(&model.Dealership{}).
		Where("id = ?", f.dealership.ID).
		Update("active", false).Error)

	_, err := offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{
		VehicleID: f.vehicle.ID,
		Stock:     1,
		Price:     1000000,
	})
	assert.ErrorIs(t, err, ErrDealershipInactive)
}

func TestOfferService_CreateOffer_VehicleNotFound(t *testing.T) {
	offerService, _, f := setupOfferServiceTest(t)

	_, err := offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{
		VehicleID: 9999,
		Stock:     1,
		Price:     1000000,
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestOfferService_CreateOffer_DuplicateVehicle(t *testing.T) {
	offerService, _, f := setupOfferServiceTest(t)

	_, err := offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{
		VehicleID: f.vehicle.ID,
		Stock:     5,
		Price:     25000000,
	})
	require.NoError(t, err)

	_, err = offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{
		VehicleID: f.vehicle.ID,
		Stock:     3,
		Price:     24000000,
	})
	assert.ErrorIs(t, err, ErrOfferAlreadyExists)
}

func TestOfferService_ListOffersForActor(t *testing.T) {
	offerService, testDB, f := setupOfferServiceTest(t)

	second := &model.Vehicle{Brand: "Ford", Model: "Focus", ModelYear: 2023}
	require.NoError(t, testDB.Create(second).Error)

	_, err := offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{VehicleID: f.vehicle.ID, Stock: 2, Price: 25000000})
	require.NoError(t, err)
	_, err = offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{VehicleID: second.ID, Stock: 1, Price: 18000000})
	require.NoError(t, err)

	offers, err := offerService.ListOffersForActor(f.dealerUser.ID)
	require.NoError(t, err)
	assert.Len(t, offers, 2)

	_, err = offerService.ListOffersForActor(f.buyer.ID)
	assert.ErrorIs(t, err, ErrNotDealershipUser)
}

func TestOfferService_ListOffersByVehicle(t *testing.T) {
	offerService, testDB, f := setupOfferServiceTest(t)

	other := &model.Dealership{Name: "Norte Motors", TaxID: "30-22222222-2", Active: true}
	require.NoError(t, testDB.Create(other).Error)
	otherUser := model.NewUser("norte@example.com", "hash", "Mario", "Suárez", "DEALERSHIP")
	otherUser.DealershipID = &other.ID
	require.NoError(t, testDB.Create(otherUser).Error)

	_, err := offerService.CreateOffer(f.dealerUser.ID, CreateOfferInput{VehicleID: f.vehicle.ID, Stock: 2, Price: 25000000})
	require.NoError(t, err)
	_, err = offerService.CreateOffer(otherUser.ID, CreateOfferInput{VehicleID: f.vehicle.ID, Stock: 4, Price: 23000000})
	require.NoError(t, err)

	offers, err := offerService.ListOffersByVehicle(f.vehicle.ID)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	// Cheapest first
	assert.Equal(t, float64(23000000), offers[0].Price)

	_, err = offerService.ListOffersByVehicle(9999)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

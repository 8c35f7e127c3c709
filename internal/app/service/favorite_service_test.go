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

func setupFavoriteServiceTest(t *testing.T) (FavoriteService, *gorm.DB, *model.User, []*model.Offer) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	favoriteRepo := repository.NewFavoriteRepository(testDB)
	offerRepo := repository.NewOfferRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	favoriteService := NewFavoriteService(favoriteRepo, offerRepo, userRepo)

	buyer := model.NewUser("buyer@example.com", "hash", "Ana", "García", "")
	require.NoError(t, testDB.Create(buyer).Error)

	dealership := &model.Dealership{Name: "Autos del Sur", TaxID: "30-11111111-1", Active: true}
	require.NoError(t, testDB.Create(dealership).Error)

	offers := make([]*model.Offer, 0, 2)
	for i, tc := range []struct {
		brand string
		year  int
		price float64
	}{
		{"Toyota", 2024, 25000000},
		{"Ford", 2023, 18000000},
	} {
		vehicle := &model.Vehicle{Brand: tc.brand, Model: "Base", ModelYear: tc.year}
		require.NoError(t, testDB.Create(vehicle).Error)
		offer := &model.Offer{
			DealershipID: dealership.ID,
			VehicleID:    vehicle.ID,
			Stock:        3 + i,
			Price:        tc.price,
			Currency:     "ARS",
		}
		require.NoError(t, testDB.Create(offer).Error)
		offers = append(offers, offer)
	}

	return favoriteService, testDB, buyer, offers
}

func TestFavoriteService_SetFavorite(t *testing.T) {
	favoriteService, _, buyer, offers := setupFavoriteServiceTest(t)

	favorite, err := favoriteService.SetFavorite(buyer.ID, offers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, offers[0].ID, favorite.OfferID)

	got, err := favoriteService.GetFavorite(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, offers[0].ID, got.OfferID)
}

func TestFavoriteService_SetFavorite_ReplacesPrevious(t *testing.T) {
	favoriteService, testDB, buyer, offers := setupFavoriteServiceTest(t)

	_, err := favoriteService.SetFavorite(buyer.ID, offers[0].ID)
	require.NoError(t, err)
	_, err = favoriteService.SetFavorite(buyer.ID, offers[1].ID)
	require.NoError(t, err)

	got, err := favoriteService.GetFavorite(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, offers[1].ID, got.OfferID)

	// Exactly one row survives the replacement.
	var count int64
	testDB.Model(&model.Favorite{}).Where("user_id = ?", buyer.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteService_SetFavorite_OfferNotFound(t *testing.T) {
	favoriteService, _, buyer, _ := setupFavoriteServiceTest(t)

	_, err := favoriteService.SetFavorite(buyer.ID, 9999)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestFavoriteService_BuyerOnly(t *testing.T) {
	favoriteService, testDB, _, offers := setupFavoriteServiceTest(t)

	dealer := model.NewUser("dealer@example.com", "hash", "Diego", "López", "DEALERSHIP")
	require.NoError(t, testDB.Create(dealer).Error)

	_, err := favoriteService.SetFavorite(dealer.ID, offers[0].ID)
	assert.ErrorIs(t, err, ErrNotBuyer)

	_, err = favoriteService.GetFavorite(dealer.ID)
	assert.ErrorIs(t, err, ErrNotBuyer)

	err = favoriteService.RemoveFavorite(dealer.ID, offers[0].ID)
	assert.ErrorIs(t, err, ErrNotBuyer)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	favoriteService, _, buyer, offers := setupFavoriteServiceTest(t)

	_, err := favoriteService.SetFavorite(buyer.ID, offers[0].ID)
	require.NoError(t, err)

	// Removal is keyed by offer: a mismatched offer leaves the favorite alone.
	err = favoriteService.RemoveFavorite(buyer.ID, offers[1].ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)

	require.NoError(t, favoriteService.RemoveFavorite(buyer.ID, offers[0].ID))

	_, err = favoriteService.GetFavorite(buyer.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)

	// Removing again reports nothing to remove.
	err = favoriteService.RemoveFavorite(buyer.ID, offers[0].ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

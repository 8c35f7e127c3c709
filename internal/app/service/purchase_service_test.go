package service

import (
	"sync"
	"testing"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPurchaseServiceTest(t *testing.T) (PurchaseService, *gorm.DB, *model.User, *model.Offer) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	purchaseRepo := repository.NewPurchaseRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	purchaseService := NewPurchaseService(purchaseRepo, userRepo, testDB)

	buyer := model.NewUser("buyer@example.com", "hash", "Ana", "García", "")
	require.NoError(t, testDB.Create(buyer).Error)

	dealership := &model.Dealership{Name: "Autos del Sur", TaxID: "30-11111111-1", Active: true}
	require.NoError(t, testDB.Create(dealership).Error)

	vehicle := &model.Vehicle{Brand: "Toyota", Model: "Corolla", ModelYear: 2024}
	require.NoError(t, testDB.Create(vehicle).Error)

	offer := &model.Offer{
		DealershipID: dealership.ID,
		VehicleID:    vehicle.ID,
		Stock:        3,
		Price:        25000000,
		Currency:     "ARS",
	}
	require.NoError(t, testDB.Create(offer).Error)

	return purchaseService, testDB, buyer, offer
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	purchaseService, testDB, buyer, offer := setupPurchaseServiceTest(t)

	purchase, err := purchaseService.Purchase(buyer.ID, offer.ID, nil)
	require.NoError(t, err)
	assert.NotZero(t, purchase.ID)
	assert.NotEmpty(t, purchase.Reference)
	assert.Equal(t, 1, purchase.Quantity)
	assert.Equal(t, float64(25000000), purchase.UnitPrice)
	assert.Equal(t, float64(25000000), purchase.Total)

	// Stock decremented by exactly one unit.
	var updated model.Offer
	testDB.First(&updated, offer.ID)
	assert.Equal(t, 2, updated.Stock)
}

func TestPurchaseService_Purchase_RequestedPriceWins(t *testing.T) {
	purchaseService, _, buyer, offer := setupPurchaseServiceTest(t)

	requested := float64(24000000)
	purchase, err := purchaseService.Purchase(buyer.ID, offer.ID, &requested)
	require.NoError(t, err)
	assert.Equal(t, requested, purchase.UnitPrice)
	assert.Equal(t, requested, purchase.Total)
}

func TestPurchaseService_Purchase_PriceUnavailable(t *testing.T) {
	purchaseService, testDB, buyer, offer := setupPurchaseServiceTest(t)

	require.NoError(t, testDB.Model(&model.Offer{}).
		Where("id = ?", offer.ID).
		Update("price", 0).Error)

	_, err := purchaseService.Purchase(buyer.ID, offer.ID, nil)
	assert.ErrorIs(t, err, ErrPriceUnavailable)

	// A requested price rescues an offer without a list price.
	requested := float64(20000000)
	purchase, err := purchaseService.Purchase(buyer.ID, offer.ID, &requested)
	require.NoError(t, err)
	assert.Equal(t, requested, purchase.UnitPrice)
}

func TestPurchaseService_Purchase_BuyerOnly(t *testing.T) {
	purchaseService, testDB, _, offer := setupPurchaseServiceTest(t)

	dealer := model.NewUser("dealer@example.com", "hash", "Diego", "López", "DEALERSHIP")
	require.NoError(t, testDB.Create(dealer).Error)

	_, err := purchaseService.Purchase(dealer.ID, offer.ID, nil)
	assert.ErrorIs(t, err, ErrNotBuyer)
}

func TestPurchaseService_Purchase_OfferNotFound(t *testing.T) {
	purchaseService, _, buyer, _ := setupPurchaseServiceTest(t)

	_, err := purchaseService.Purchase(buyer.ID, 9999, nil)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestPurchaseService_Purchase_InactiveDealership(t *testing.T) {
	purchaseService, testDB, buyer, offer := setupPurchaseServiceTest(t)

	require.NoError(t, testDB.Model(&model.Dealership{}).
		Where("id = ?", offer.DealershipID).
		Update("active", false).Error)

	_, err := purchaseService.Purchase(buyer.ID, offer.ID, nil)
	assert.ErrorIs(t, err, ErrDealershipInactive)
}

func TestPurchaseService_Purchase_StockExhaustion(t *testing.T) {
	purchaseService, testDB, buyer, offer := setupPurchaseServiceTest(t)

	require.NoError(t, testDB.Model(&model.Offer{}).
		Where("id = ?", offer.ID).
		Update("stock", 1).Error)

	_, err := purchaseService.Purchase(buyer.ID, offer.ID, nil)
	require.NoError(t, err)

	_, err = purchaseService.Purchase(buyer.ID, offer.ID, nil)
	assert.ErrorIs(t, err, ErrOutOfStock)

	var updated model.Offer
	testDB.First(&updated, offer.ID)
	assert.Equal(t, 0, updated.Stock)
}

func TestPurchaseService_Purchase_ConcurrentLastUnit(t *testing.T) {
	purchaseService, testDB, buyer, offer := setupPurchaseServiceTest(t)

	require.NoError(t, testDB.Model(&model.Offer{}).
		Where("id = ?", offer.ID).
		Update("stock", 1).Error)

	second := model.NewUser("segundo@example.com", "hash", "Bruno", "Díaz", "")
	require.NoError(t, testDB.Create(second).Error)

	buyers := []uint{buyer.ID, second.ID}
	results := make([]error, len(buyers))

	var wg sync.WaitGroup
	for i, id := range buyers {
		wg.Add(1)
		go func(i int, buyerID uint) {
			defer wg.Done()
			_, err := purchaseService.Purchase(buyerID, offer.ID, nil)
			results[i] = err
		}(i, id)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrOutOfStock)
		}
	}
	assert.Equal(t, 1, successes)

	var updated model.Offer
	testDB.First(&updated, offer.ID)
	assert.Equal(t, 0, updated.Stock)

	var count int64
	testDB.Model(&model.Purchase{}).Where("offer_id = ?", offer.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPurchaseService_ListPurchasesByBuyer(t *testing.T) {
	purchaseService, _, buyer, offer := setupPurchaseServiceTest(t)

	for i := 0; i < 2; i++ {
		_, err := purchaseService.Purchase(buyer.ID, offer.ID, nil)
		require.NoError(t, err)
	}

	purchases, err := purchaseService.ListPurchasesByBuyer(buyer.ID)
	require.NoError(t, err)
	assert.Len(t, purchases, 2)
}

func TestPurchaseService_ListSalesForActor(t *testing.T) {
	purchaseService, testDB, buyer, offer := setupPurchaseServiceTest(t)

	dealer := model.NewUser("dealer@example.com", "hash", "Diego", "López", "DEALERSHIP")
	dealershipID := offer.DealershipID
	dealer.DealershipID = &dealershipID
	require.NoError(t, testDB.Create(dealer).Error)

	_, err := purchaseService.Purchase(buyer.ID, offer.ID, nil)
	require.NoError(t, err)

	sales, err := purchaseService.ListSalesForActor(dealer.ID)
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	_, err = purchaseService.ListSalesForActor(buyer.ID)
	assert.ErrorIs(t, err, ErrNotDealershipUser)
}

package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOutOfStock       = errors.New("offer is out of stock")
	ErrPriceUnavailable = errors.New("no price available for purchase")
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// Each purchase covers exactly one unit of the offered vehicle.
const purchaseQuantity = 1

type PurchaseService interface {
	// Purchase buys one unit of an offer for the acting buyer. A requested
	// price, when given, overrides the offer's list price.
	Purchase(buyerID, offerID uint, requestedPrice *float64) (*model.Purchase, error)
	GetPurchaseByID(id uint) (*model.Purchase, error)
	ListPurchasesByBuyer(buyerID uint) ([]model.Purchase, error)
	ListSalesForActor(actorID uint) ([]model.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	userRepo     repository.UserRepository
	db           *gorm.DB
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		db:           db,
	}
}

func (s *purchaseService) Purchase(buyerID, offerID uint, requestedPrice *float64) (*model.Purchase, error) {
	logger.Info("Processing purchase", map[string]interface{}{
		"buyer_id": buyerID,
		"offer_id": offerID,
	})

	buyer, err := s.userRepo.FindByID(buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !buyer.IsBuyer() {
		logger.Warn("Purchase denied: user is not a buyer", map[string]interface{}{
			"user_id": buyerID,
			"role":    buyer.Role,
		})
		return nil, ErrNotBuyer
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during purchase, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"buyer_id": buyerID,
				"offer_id": offerID,
			})
		}
	}()

	var offer model.Offer
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Dealership").
		First(&offer, offerID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Purchase failed: offer not found", map[string]interface{}{
				"offer_id": offerID,
			})
			return nil, ErrOfferNotFound
		}
		logger.Error("Failed to fetch offer during purchase", err, map[string]interface{}{
			"offer_id": offerID,
		})
		return nil, err
	}

	if !offer.Dealership.Active {
		tx.Rollback()
		logger.Warn("Purchase failed: dealership inactive", map[string]interface{}{
			"offer_id":      offerID,
			"dealership_id": offer.DealershipID,
		})
		return nil, ErrDealershipInactive
	}

	if offer.Stock < purchaseQuantity {
		tx.Rollback()
		logger.Warn("Purchase failed: offer out of stock", map[string]interface{}{
			"offer_id": offerID,
			"stock":    offer.Stock,
		})
		return nil, ErrOutOfStock
	}

	unitPrice := offer.Price
	if requestedPrice != nil {
		unitPrice = *requestedPrice
	}
	if unitPrice <= 0 {
		tx.Rollback()
		logger.Warn("Purchase failed: no usable price", map[string]interface{}{
			"offer_id": offerID,
		})
		return nil, ErrPriceUnavailable
	}

	// Conditional decrement guards against a concurrent purchase draining
	// the last unit between the read and the update.
	result := tx.Model(&model.Offer{}).
		Where("id = ? AND stock >= ?", offer.ID, purchaseQuantity).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Update("stock", gorm.Expr("stock - ?", purchaseQuantity))
	if result.Error != nil {
		tx.Rollback()
		logger.Error("Failed to decrement offer stock", result.Error, map[string]interface{}{
			"offer_id": offerID,
		})
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		logger.Warn("Purchase failed: stock drained concurrently", map[string]interface{}{
			"offer_id": offerID,
		})
		return nil, ErrOutOfStock
	}

	purchase := &model.Purchase{
		Reference: uuid.NewString(),
		OfferID:   offer.ID,
		BuyerID:   buyerID,
		UnitPrice: unitPrice,
		Quantity:  purchaseQuantity,
		Total:     unitPrice * float64(purchaseQuantity),
	}

	if err := tx.Create(purchase).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create purchase", err, map[string]interface{}{
			"buyer_id": buyerID,
			"offer_id": offerID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit purchase transaction", err, map[string]interface{}{
			"buyer_id":    buyerID,
			"offer_id":    offerID,
			"purchase_id": purchase.ID,
		})
		return nil, err
	}

	logger.Info("Purchase completed successfully", map[string]interface{}{
		"purchase_id": purchase.ID,
		"reference":   purchase.Reference,
		"buyer_id":    buyerID,
		"offer_id":    offerID,
		"total":       purchase.Total,
	})

	return s.purchaseRepo.FindByID(purchase.ID)
}

func (s *purchaseService) GetPurchaseByID(id uint) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) ListPurchasesByBuyer(buyerID uint) ([]model.Purchase, error) {
	return s.purchaseRepo.FindByBuyerID(buyerID)
}

// ListSalesForActor lists purchases recorded against the acting dealership
// user's dealership.
func (s *purchaseService) ListSalesForActor(actorID uint) ([]model.Purchase, error) {
	user, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsDealershipUser() {
		return nil, ErrNotDealershipUser
	}
	if user.DealershipID == nil {
		return nil, ErrNoDealershipLinked
	}
	return s.purchaseRepo.FindByDealershipID(*user.DealershipID)
}

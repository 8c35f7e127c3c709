package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	FindByUserID(userID uint) (*model.Favorite, error)
	// Replace atomically swaps the user's favorite for the given offer,
	// deleting any previous row in the same transaction.
	Replace(userID, offerID uint) (*model.Favorite, error)
	DeleteByUserAndOffer(userID, offerID uint) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) FindByUserID(userID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.Preload("Offer").Preload("Offer.Dealership").Preload("Offer.Vehicle").
		Where("user_id = ?", userID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Replace(userID, offerID uint) (*model.Favorite, error) {
	favorite := &model.Favorite{
		UserID:  userID,
		OfferID: offerID,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Create(favorite).Error
	})
	if err != nil {
		logger.Error("Failed to replace favorite in database", err, map[string]interface{}{
			"user_id":  userID,
			"offer_id": offerID,
		})
		return nil, err
	}

	logger.Debug("Favorite replaced in database", map[string]interface{}{
		"user_id":  userID,
		"offer_id": offerID,
	})
	return favorite, nil
}

func (r *favoriteRepository) DeleteByUserAndOffer(userID, offerID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND offer_id = ?", userID, offerID).Delete(&model.Favorite{})
	if result.Error != nil {
		logger.Error("Failed to delete favorite in database", result.Error, map[string]interface{}{
			"user_id":  userID,
			"offer_id": offerID,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

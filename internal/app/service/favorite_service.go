package service

import (
	"errors"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrNotBuyer         = errors.New("user is not a buyer")
)

type FavoriteService interface {
	// SetFavorite marks an offer as the buyer's favorite. A buyer holds at
	// most one favorite: setting a new one replaces the previous one.
	SetFavorite(userID, offerID uint) (*model.Favorite, error)
	GetFavorite(userID uint) (*model.Favorite, error)
	// RemoveFavorite deletes the buyer's favorite of the given offer. A
	// favorite of a different offer is left untouched and reported as not
	// found.
	RemoveFavorite(userID, offerID uint) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	offerRepo    repository.OfferRepository
	userRepo     repository.UserRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	offerRepo repository.OfferRepository,
	userRepo repository.UserRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		offerRepo:    offerRepo,
		userRepo:     userRepo,
	}
}

func (s *favoriteService) requireBuyer(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsBuyer() {
		logger.Warn("Favorite access denied: user is not a buyer", map[string]interface{}{
			"user_id": userID,
			"role":    user.Role,
		})
		return nil, ErrNotBuyer
	}
	return user, nil
}

func (s *favoriteService) SetFavorite(userID, offerID uint) (*model.Favorite, error) {
	logger.Info("Setting favorite", map[string]interface{}{
		"user_id":  userID,
		"offer_id": offerID,
	})

	if _, err := s.requireBuyer(userID); err != nil {
		return nil, err
	}

	if _, err := s.offerRepo.FindByID(offerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Favorite failed: offer not found", map[string]interface{}{
				"offer_id": offerID,
			})
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	favorite, err := s.favoriteRepo.Replace(userID, offerID)
	if err != nil {
		return nil, err
	}

	logger.Info("Favorite set successfully", map[string]interface{}{
		"user_id":  userID,
		"offer_id": offerID,
	})
	return favorite, nil
}

func (s *favoriteService) GetFavorite(userID uint) (*model.Favorite, error) {
	if _, err := s.requireBuyer(userID); err != nil {
		return nil, err
	}

	favorite, err := s.favoriteRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return favorite, nil
}

func (s *favoriteService) RemoveFavorite(userID, offerID uint) error {
	if _, err := s.requireBuyer(userID); err != nil {
		return err
	}

	deleted, err := s.favoriteRepo.DeleteByUserAndOffer(userID, offerID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrFavoriteNotFound
	}

	logger.Info("Favorite removed", map[string]interface{}{
		"user_id":  userID,
		"offer_id": offerID,
	})
	return nil
}

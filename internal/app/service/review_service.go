package service

import (
	"errors"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("user already reviewed this vehicle")
	ErrInvalidScore        = errors.New("score must be between 0 and 10")
	ErrNotReviewAuthor     = errors.New("review belongs to another user")
)

const (
	minReviewScore = 0
	maxReviewScore = 10
)

type ReviewService interface {
	CreateReview(userID, vehicleID uint, score int, comment string) (*model.Review, error)
	UpdateReview(userID, vehicleID uint, score int, comment string) (*model.Review, error)
	DeleteReview(userID, vehicleID uint) error
	ListReviewsByVehicle(vehicleID uint) ([]model.Review, error)
	ListReviewsByUser(userID uint) ([]model.Review, error)
	VehicleScore(vehicleID uint) (float64, int64, error)
	TopRankedVehicles(limit int) ([]repository.VehicleRanking, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	vehicleRepo repository.VehicleRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	vehicleRepo repository.VehicleRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		vehicleRepo: vehicleRepo,
	}
}

func validScore(score int) bool {
	return score >= minReviewScore && score <= maxReviewScore
}

func (s *reviewService) CreateReview(userID, vehicleID uint, score int, comment string) (*model.Review, error) {
	logger.Info("Creating review", map[string]interface{}{
		"user_id":    userID,
		"vehicle_id": vehicleID,
		"score":      score,
	})

	if !validScore(score) {
		logger.Warn("Review rejected: score out of range", map[string]interface{}{
			"user_id": userID,
			"score":   score,
		})
		return nil, ErrInvalidScore
	}

	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	existing, err := s.reviewRepo.FindByUserAndVehicle(userID, vehicleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing review", err, map[string]interface{}{
			"user_id":    userID,
			"vehicle_id": vehicleID,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Review rejected: user already reviewed vehicle", map[string]interface{}{
			"user_id":    userID,
			"vehicle_id": vehicleID,
		})
		return nil, ErrReviewAlreadyExists
	}

	review := &model.Review{
		UserID:    userID,
		VehicleID: vehicleID,
		Score:     score,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"user_id":    userID,
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	logger.Info("Review created successfully", map[string]interface{}{
		"review_id":  review.ID,
		"vehicle_id": vehicleID,
	})
	return review, nil
}

// UpdateReview rewrites the actor's review of a vehicle. Lookup is keyed by
// (user, vehicle), so each actor can only ever reach their own review.
func (s *reviewService) UpdateReview(userID, vehicleID uint, score int, comment string) (*model.Review, error) {
	if !validScore(score) {
		return nil, ErrInvalidScore
	}

	review, err := s.reviewRepo.FindByUserAndVehicle(userID, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		// Backstop only; the keyed lookup already scopes to the author.
		return nil, ErrNotReviewAuthor
	}

	review.Score = score
	review.Comment = comment
	if err := s.reviewRepo.Update(review); err != nil {
		logger.Error("Failed to update review", err, map[string]interface{}{
			"review_id": review.ID,
		})
		return nil, err
	}

	logger.Info("Review updated", map[string]interface{}{
		"review_id": review.ID,
		"score":     score,
	})
	return review, nil
}

func (s *reviewService) DeleteReview(userID, vehicleID uint) error {
	review, err := s.reviewRepo.FindByUserAndVehicle(userID, vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != userID {
		return ErrNotReviewAuthor
	}

	if err := s.reviewRepo.Delete(review); err != nil {
		logger.Error("Failed to delete review", err, map[string]interface{}{
			"review_id": review.ID,
		})
		return err
	}

	logger.Info("Review deleted", map[string]interface{}{
		"review_id":  review.ID,
		"vehicle_id": vehicleID,
	})
	return nil
}

func (s *reviewService) ListReviewsByVehicle(vehicleID uint) ([]model.Review, error) {
	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return s.reviewRepo.FindByVehicleID(vehicleID)
}

func (s *reviewService) ListReviewsByUser(userID uint) ([]model.Review, error) {
	return s.reviewRepo.FindByUserID(userID)
}

func (s *reviewService) VehicleScore(vehicleID uint) (float64, int64, error) {
	if _, err := s.vehicleRepo.FindByID(vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrVehicleNotFound
		}
		return 0, 0, err
	}
	return s.reviewRepo.AverageScore(vehicleID)
}

func (s *reviewService) TopRankedVehicles(limit int) ([]repository.VehicleRanking, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reviewRepo.TopRanked(limit)
}

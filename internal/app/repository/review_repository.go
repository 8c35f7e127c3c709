package repository

import (
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"gorm.io/gorm"
)

// VehicleRanking is the aggregated review standing of a single vehicle.
type VehicleRanking struct {
	Vehicle      model.Vehicle `json:"vehicle"`
	AverageScore float64       `json:"average_score"`
	ReviewCount  int64         `json:"review_count"`
}

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByUserAndVehicle(userID, vehicleID uint) (*model.Review, error)
	FindByVehicleID(vehicleID uint) ([]model.Review, error)
	FindByUserID(userID uint) ([]model.Review, error)
	Update(review *model.Review) error
	Delete(review *model.Review) error
	AverageScore(vehicleID uint) (float64, int64, error)
	TopRanked(limit int) ([]VehicleRanking, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByUserAndVehicle(userID, vehicleID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByVehicleID(vehicleID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Preload("User").
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByUserID(userID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(review *model.Review) error {
	return r.db.Delete(review).Error
}

func (r *reviewRepository) AverageScore(vehicleID uint) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}
	err := r.db.Model(&model.Review{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("vehicle_id = ?", vehicleID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Average, result.Count, nil
}

// TopRanked returns up to limit vehicles ordered by average score, then by
// review count. Vehicles without reviews are excluded.
func (r *reviewRepository) TopRanked(limit int) ([]VehicleRanking, error) {
	var rows []struct {
		VehicleID    uint
		AverageScore float64
		ReviewCount  int64
	}
	err := r.db.Model(&model.Review{}).
		Select("vehicle_id, AVG(score) AS average_score, COUNT(*) AS review_count").
		Group("vehicle_id").
		Order("average_score DESC, review_count DESC, vehicle_id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rankings := make([]VehicleRanking, 0, len(rows))
	for _, row := range rows {
		var vehicle model.Vehicle
		if err := r.db.First(&vehicle, row.VehicleID).Error; err != nil {
			return nil, err
		}
		rankings = append(rankings, VehicleRanking{
			Vehicle:      vehicle,
			AverageScore: row.AverageScore,
			ReviewCount:  row.ReviewCount,
		})
	}
	return rankings, nil
}

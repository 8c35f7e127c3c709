package model

import (
	"time"
)

// Review is a user's scored opinion of a vehicle, unique per (user, vehicle).
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:ux_reviews_user_vehicle" json:"user_id"`
	VehicleID uint      `gorm:"not null;uniqueIndex:ux_reviews_user_vehicle" json:"vehicle_id"`
	Score     int       `gorm:"not null" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

package model

import (
	"time"
)

type Vehicle struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Brand     string    `gorm:"not null;uniqueIndex:ux_vehicles_brand_model_year" json:"brand"`
	Model     string    `gorm:"not null;uniqueIndex:ux_vehicles_brand_model_year" json:"model"`
	ModelYear int       `gorm:"not null;uniqueIndex:ux_vehicles_brand_model_year" json:"model_year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Offers  []Offer  `gorm:"foreignKey:VehicleID" json:"-"`
	Reviews []Review `gorm:"foreignKey:VehicleID" json:"-"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

package model

import (
	"time"
)

// Offer is a dealership's sale listing for one vehicle. At most one offer
// exists per (dealership, vehicle) pair; the composite unique index backs the
// service-level check.
type Offer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	DealershipID uint      `gorm:"not null;index;uniqueIndex:ux_offers_dealership_vehicle" json:"dealership_id"`
	VehicleID    uint      `gorm:"not null;index;uniqueIndex:ux_offers_dealership_vehicle" json:"vehicle_id"`
	Stock        int       `gorm:"not null" json:"stock"`
	Price        float64   `gorm:"not null" json:"price"`
	Currency     string    `gorm:"type:varchar(10);not null" json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Dealership Dealership `gorm:"foreignKey:DealershipID" json:"dealership,omitempty"`
	Vehicle    Vehicle    `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (Offer) TableName() string {
	return "offers"
}

package model

import (
	"time"
)

// Dealership is a vehicle dealership able to publish offers. The managing
// user owns the association through User.DealershipID; look it up through the
// user repository instead of materializing a back-reference here.
type Dealership struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	TaxID     string    `gorm:"uniqueIndex;not null;type:varchar(20)" json:"tax_id"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Offers []Offer `gorm:"foreignKey:DealershipID" json:"-"`
}

func (Dealership) TableName() string {
	return "dealerships"
}

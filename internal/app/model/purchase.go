package model

import (
	"time"
)

// Purchase is an append-only sale record. Quantity is fixed at 1 and rows are
// never updated after creation.
type Purchase struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Reference string    `gorm:"uniqueIndex;not null;type:varchar(36)" json:"reference"`
	OfferID   uint      `gorm:"not null;index" json:"offer_id"`
	BuyerID   uint      `gorm:"not null;index" json:"buyer_id"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Total     float64   `gorm:"not null" json:"total"`
	CreatedAt time.Time `json:"purchased_at"`

	Offer Offer `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
	Buyer User  `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
}

func (Purchase) TableName() string {
	return "purchases"
}

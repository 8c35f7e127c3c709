package model

import (
	"time"
)

// Favorite is a buyer's single marked offer. The unique index on UserID
// enforces at most one live row per user; replacement hard-deletes the old
// row inside the same transaction, so rows are never soft-deleted here.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	OfferID   uint      `gorm:"not null;index" json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Offer Offer `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

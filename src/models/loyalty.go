package models

import (
	"hbs/src/types"
)

// LoyaltyTransaction is append-only. Points are signed so redemptions can
// share the same ledger.
type LoyaltyTransaction struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	GuestID     uint   `gorm:"index" json:"guest_id,omitempty"`
	BookingID   *uint  `gorm:"index" json:"booking_id,omitempty"`
	Points      int64  `json:"points"`
	Description string `json:"description,omitempty"`

	types.Timestamps
}

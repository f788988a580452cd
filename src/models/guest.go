package models

import (
	"hbs/src/types"
)

type Guest struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	FirstName     string  `json:"first_name,omitempty"`
	LastName      string  `json:"last_name,omitempty"`
	Email         string  `gorm:"uniqueIndex" json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Country       string  `json:"country,omitempty"`
	Document      string  `json:"document,omitempty"`
	Role          string  `gorm:"default:'guest'" json:"role,omitempty"`
	LoyaltyPoints int64   `json:"loyalty_points"`
	Metadata      *types.JSONB `gorm:"type:jsonb" json:"metadata,omitempty"`

	Bookings     []Booking            `gorm:"foreignKey:guest_id" json:"bookings,omitempty"`
	Transactions []LoyaltyTransaction `gorm:"foreignKey:guest_id" json:"loyalty_transactions,omitempty"`

	types.Timestamps
}

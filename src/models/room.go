package models

import (
	"hbs/src/types"
)

type Room struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name,omitempty"`
	Type      string         `json:"type,omitempty"`
	SellUnit  types.SellUnit `gorm:"default:'bed'" json:"sell_unit,omitempty"`
	Capacity  uint           `json:"capacity,omitempty"`
	Active    bool           `gorm:"default:true" json:"active"`
	Amenities *types.JSONB   `gorm:"type:jsonb" json:"amenities,omitempty"`

	// Nightly rates per pricing season. The applicable one is picked from the
	// check-in date, not per night of the stay.
	HighSeasonRate float64 `json:"high_season_rate"`
	MidSeasonRate  float64 `json:"mid_season_rate"`
	LowSeasonRate  float64 `json:"low_season_rate"`

	Beds []Bed `gorm:"foreignKey:room_id" json:"beds,omitempty"`

	types.Timestamps
}

type Bed struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	RoomID uint   `json:"room_id,omitempty"`
	Label  string `json:"label,omitempty"`
	Active bool   `gorm:"default:true" json:"active"`

	types.Timestamps
}

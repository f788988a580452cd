package models

import (
	"hbs/src/types"
)

type StayPackage struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Nights      uint         `json:"nights,omitempty"`
	RoomType    *string      `json:"room_type,omitempty"`
	CouplesOnly bool         `json:"couples_only"`
	Price       float64      `json:"price"`
	Includes    *types.JSONB `gorm:"type:jsonb" json:"includes,omitempty"`
	Active      bool         `gorm:"default:true" json:"active"`

	types.Timestamps
}

func (p *StayPackage) Descriptor() *types.PackageDescriptor {
	d := &types.PackageDescriptor{
		ID:          p.ID,
		Name:        p.Name,
		Nights:      p.Nights,
		RoomType:    p.RoomType,
		CouplesOnly: p.CouplesOnly,
		Price:       p.Price,
	}
	if p.Includes != nil {
		if items, ok := (*p.Includes)["items"].([]any); ok {
			for _, v := range items {
				if s, ok := v.(string); ok {
					d.Includes = append(d.Includes, s)
				}
			}
		}
	}
	return d
}

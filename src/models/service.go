package models

import (
	"hbs/src/types"
)

type HostelService struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Schedulable bool    `json:"schedulable"`
	Active      bool    `gorm:"default:true" json:"active"`

	types.Timestamps
}

func (HostelService) TableName() string {
	return "services"
}

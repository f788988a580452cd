package utils

import (
	"errors"
	"time"

	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/pricing"
	"hbs/src/types"
)

// RoomOffer is a room priced for a concrete check-in date. Inactive rooms
// never appear in the offered set.
type RoomOffer struct {
	Room        models.Room  `json:"room"`
	Season      types.Season `json:"season"`
	NightlyRate float64      `json:"nightly_rate"`
}

func AvailableRooms(checkIn time.Time) ([]RoomOffer, error) {
	d := db.GetDb()
	var rooms []models.Room
	err := d.
		Where(&models.Room{Active: true}).
		Preload("Beds").
		Find(&rooms).
		Error
	if err != nil {
		return nil, err
	}
	offers := make([]RoomOffer, 0, len(rooms))
	season := pricing.SeasonFor(checkIn)
	for _, room := range rooms {
		offers = append(offers, RoomOffer{
			Room:        room,
			Season:      season,
			NightlyRate: pricing.RateFor(&room, checkIn),
		})
	}
	return offers, nil
}

// RoomOfferByID prices a single active room for the given check-in date.
func RoomOfferByID(roomID uint, checkIn time.Time) (*RoomOffer, error) {
	d := db.GetDb()
	var room models.Room
	err := d.
		Where(&models.Room{ID: roomID, Active: true}).
		Preload("Beds").
		First(&room).
		Error
	if err != nil {
		return nil, err
	}
	return &RoomOffer{
		Room:        room,
		Season:      pricing.SeasonFor(checkIn),
		NightlyRate: pricing.RateFor(&room, checkIn),
	}, nil
}

func ActiveServices() ([]models.HostelService, error) {
	d := db.GetDb()
	var services []models.HostelService
	err := d.
		Where(&models.HostelService{Active: true}).
		Find(&services).
		Error
	return services, err
}

// PackageCatalog adapts the stay-package table to the wizard's package
// source.
type PackageCatalog struct{}

func (PackageCatalog) PackageByID(id uint) (*types.PackageDescriptor, error) {
	d := db.GetDb()
	var pkg models.StayPackage
	if err := d.Where(&models.StayPackage{ID: id}).First(&pkg).Error; err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, errors.New("package is no longer offered")
	}
	return pkg.Descriptor(), nil
}

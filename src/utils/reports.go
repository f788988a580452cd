package utils

import (
	"time"

	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
)

type RevenueReport struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	Bookings     int64   `json:"bookings"`
	TotalRevenue float64 `json:"total_revenue"`
	PaidRevenue  float64 `json:"paid_revenue"`
}

// RevenueBetween aggregates lifecycle rows only; cancelled and no-show
// bookings contribute nothing.
func RevenueBetween(from time.Time, to time.Time) (*RevenueReport, error) {
	d := db.GetDb()
	type row struct {
		Bookings     int64
		TotalRevenue float64
		PaidRevenue  float64
	}
	var r row
	err := d.
		Model(&models.Booking{}).
		Select("COUNT(id) AS bookings, COALESCE(SUM(total_amount), 0) AS total_revenue, COALESCE(SUM(paid_amount), 0) AS paid_revenue").
		Where("check_in >= ? AND check_in < ?", from, to).
		Where("status NOT IN ?", []types.BookingStatus{types.BOOKING_CANCELLED, types.BOOKING_NO_SHOW}).
		Scan(&r).
		Error
	if err != nil {
		return nil, err
	}
	return &RevenueReport{
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		Bookings:     r.Bookings,
		TotalRevenue: r.TotalRevenue,
		PaidRevenue:  r.PaidRevenue,
	}, nil
}

type OccupancyReport struct {
	Date         string  `json:"date"`
	OccupiedBeds int64   `json:"occupied_beds"`
	Capacity     int64   `json:"capacity"`
	Rate         float64 `json:"rate"`
}

// OccupancyOn reports bed usage for one night. A booking occupies its beds
// from check-in (inclusive) to check-out (exclusive).
func OccupancyOn(date time.Time) (*OccupancyReport, error) {
	d := db.GetDb()
	var occupied int64
	err := d.
		Model(&models.RoomAssignment{}).
		Select("COALESCE(SUM(room_assignments.quantity), 0)").
		Joins("JOIN bookings ON bookings.id = room_assignments.booking_id").
		Where("bookings.check_in <= ? AND bookings.check_out > ?", date, date).
		Where("bookings.status IN ?", []types.BookingStatus{types.BOOKING_CONFIRMED, types.BOOKING_CHECKED_IN, types.BOOKING_CHECKED_OUT}).
		Scan(&occupied).
		Error
	if err != nil {
		return nil, err
	}

	var capacity int64
	err = d.
		Model(&models.Room{}).
		Select("COALESCE(SUM(capacity), 0)").
		Where(&models.Room{Active: true}).
		Scan(&capacity).
		Error
	if err != nil {
		return nil, err
	}

	report := &OccupancyReport{
		Date:         date.Format("2006-01-02"),
		OccupiedBeds: occupied,
		Capacity:     capacity,
	}
	if capacity > 0 {
		report.Rate = float64(occupied) / float64(capacity) * 100
	}
	return report, nil
}

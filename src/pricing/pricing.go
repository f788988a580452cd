package pricing

import (
	"math"
	"time"

	"hbs/src/config"
	"hbs/src/types"
)

type Summary struct {
	Nights      int     `json:"nights"`
	RoomsTotal  float64 `json:"rooms_total"`
	ExtrasTotal float64 `json:"extras_total"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Nights is the whole-day difference between the two dates, both normalized
// to midnight. Same-day or inverted ranges yield <= 0; callers gate on that,
// this package never errors.
func Nights(checkIn time.Time, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeSummary recomputes the full price breakdown from scratch. It is
// order-independent over rooms and extras and safe to call on every draft
// mutation.
func ComputeSummary(rooms []types.RoomSelection, extras []types.ExtraSelection, checkIn time.Time, checkOut time.Time) Summary {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return Summary{Nights: nights}
	}
	var roomsTotal float64
	for _, r := range rooms {
		roomsTotal += r.PricePerNight * float64(r.Quantity) * float64(nights)
	}
	var extrasTotal float64
	for _, e := range extras {
		extrasTotal += e.Price * float64(e.Quantity)
	}
	subtotal := round2(roomsTotal + extrasTotal)
	tax := round2(subtotal * config.TAX_RATE)
	return Summary{
		Nights:      nights,
		RoomsTotal:  round2(roomsTotal),
		ExtrasTotal: round2(extrasTotal),
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       round2(subtotal + tax),
	}
}

package pricing

import (
	"testing"
	"time"

	"hbs/src/models"
	"hbs/src/types"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2026, 3, 10), date(2026, 3, 13)))
	assert.Equal(t, 0, Nights(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Equal(t, -2, Nights(date(2026, 3, 10), date(2026, 3, 8)))
	// time-of-day must not leak into the count
	in := time.Date(2026, 3, 10, 23, 15, 0, 0, time.UTC)
	out := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(in, out))
}

func TestComputeSummary(t *testing.T) {
	rooms := []types.RoomSelection{
		{RoomID: 1, RoomName: "8-bed dorm", Quantity: 2, PricePerNight: 25, SellUnit: types.SELL_PER_BED},
	}
	extras := []types.ExtraSelection{
		{ServiceID: 7, ServiceName: "Surf lesson", Quantity: 1, Price: 40},
	}
	s := ComputeSummary(rooms, extras, date(2026, 6, 1), date(2026, 6, 4))

	assert.Equal(t, 3, s.Nights)
	assert.Equal(t, 150.0, s.RoomsTotal)
	assert.Equal(t, 40.0, s.ExtrasTotal)
	assert.Equal(t, 190.0, s.Subtotal)
	assert.Equal(t, 24.70, s.Tax)
	assert.Equal(t, 214.70, s.Total)
}

func TestComputeSummaryOrderIndependent(t *testing.T) {
	rooms := []types.RoomSelection{
		{RoomID: 1, Quantity: 1, PricePerNight: 30},
		{RoomID: 2, Quantity: 2, PricePerNight: 55.5},
		{RoomID: 3, Quantity: 4, PricePerNight: 12.25},
	}
	extras := []types.ExtraSelection{
		{ServiceID: 1, Quantity: 2, Price: 15},
		{ServiceID: 2, Quantity: 1, Price: 9.99},
	}
	a := ComputeSummary(rooms, extras, date(2026, 2, 1), date(2026, 2, 5))

	reversedRooms := []types.RoomSelection{rooms[2], rooms[0], rooms[1]}
	reversedExtras := []types.ExtraSelection{extras[1], extras[0]}
	b := ComputeSummary(reversedRooms, reversedExtras, date(2026, 2, 1), date(2026, 2, 5))

	assert.Equal(t, a, b)
}

func TestComputeSummaryNotReadyToPrice(t *testing.T) {
	rooms := []types.RoomSelection{{RoomID: 1, Quantity: 2, PricePerNight: 25}}

	same := ComputeSummary(rooms, nil, date(2026, 3, 10), date(2026, 3, 10))
	assert.Equal(t, 0.0, same.Total)

	inverted := ComputeSummary(rooms, nil, date(2026, 3, 10), date(2026, 3, 8))
	assert.Equal(t, 0.0, inverted.Total)
	assert.Equal(t, -2, inverted.Nights)
}

func TestSeasonForBoundaries(t *testing.T) {
	cases := []struct {
		date   time.Time
		season types.Season
	}{
		{date(2026, 12, 27), types.SEASON_HIGH},
		{date(2026, 12, 26), types.SEASON_MID},
		{date(2026, 1, 15), types.SEASON_HIGH},
		{date(2026, 4, 30), types.SEASON_HIGH},
		{date(2026, 5, 1), types.SEASON_MID},
		{date(2026, 8, 31), types.SEASON_MID},
		{date(2026, 9, 1), types.SEASON_LOW},
		{date(2026, 10, 31), types.SEASON_LOW},
		{date(2026, 11, 1), types.SEASON_MID},
	}
	for _, c := range cases {
		assert.Equalf(t, c.season, SeasonFor(c.date), "date %s", c.date.Format("2006-01-02"))
	}
}

func TestSeasonForIsTotal(t *testing.T) {
	// leap year: every day must classify as exactly one season
	start := date(2024, 1, 1)
	counts := map[types.Season]int{}
	for d := start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		counts[SeasonFor(d)]++
	}
	total := counts[types.SEASON_HIGH] + counts[types.SEASON_MID] + counts[types.SEASON_LOW]
	assert.Equal(t, 366, total)
	assert.Equal(t, 61, counts[types.SEASON_LOW])
	// Dec 27-31 plus Jan 1 through Apr 30 of a leap year
	assert.Equal(t, 5+31+29+31+30, counts[types.SEASON_HIGH])
}

func TestRateFor(t *testing.T) {
	room := &models.Room{HighSeasonRate: 40, MidSeasonRate: 30, LowSeasonRate: 20}
	assert.Equal(t, 40.0, RateFor(room, date(2026, 1, 10)))
	assert.Equal(t, 30.0, RateFor(room, date(2026, 6, 10)))
	assert.Equal(t, 20.0, RateFor(room, date(2026, 9, 10)))
}

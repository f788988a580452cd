package pricing

import (
	"time"

	"hbs/src/models"
	"hbs/src/types"
)

// SeasonFor classifies a check-in date. High season runs Dec 27 through
// Apr 30, low season Sep 1 through Oct 31, everything else is mid. The
// classification is total over the calendar year.
func SeasonFor(date time.Time) types.Season {
	month := date.Month()
	day := date.Day()
	switch {
	case month == time.December && day >= 27:
		return types.SEASON_HIGH
	case month >= time.January && month <= time.April:
		return types.SEASON_HIGH
	case month == time.September || month == time.October:
		return types.SEASON_LOW
	default:
		return types.SEASON_MID
	}
}

// RateFor picks the room's nightly rate for a stay starting on the given
// date. The check-in date fixes the rate for the whole stay.
func RateFor(room *models.Room, checkIn time.Time) float64 {
	switch SeasonFor(checkIn) {
	case types.SEASON_HIGH:
		return room.HighSeasonRate
	case types.SEASON_LOW:
		return room.LowSeasonRate
	default:
		return room.MidSeasonRate
	}
}

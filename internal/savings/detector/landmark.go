package detector

import (
	"time"

	"github.com/morrow-app/morrow/internal/savings/domain"
	"github.com/shopspring/decimal"
)

var (
	newYearLandmark = domain.Landmark{
		Kind:              domain.LandmarkNewYear,
		Name:              "New Year",
		Message:           "New year, new savings goals! Start fresh with a 15% boost to your savings.",
		SuggestedIncrease: decimal.RequireFromString("0.15"),
	}
	monthStartLandmark = domain.Landmark{
		Kind:              domain.LandmarkMonthStart,
		Name:              "Month Start",
		Message:           "New month, fresh start! Boost your savings by 10% this month.",
		SuggestedIncrease: decimal.RequireFromString("0.10"),
	}
	mondayLandmark = domain.Landmark{
		Kind:              domain.LandmarkMonday,
		Name:              "Monday",
		Message:           "Fresh week ahead! Consider increasing your savings by 5%.",
		SuggestedIncrease: decimal.RequireFromString("0.05"),
	}
)

// DetectLandmark reports at most one fresh-start landmark for today.
// New Year outranks a month start, which outranks Monday.
func DetectLandmark(today time.Time) (domain.Landmark, bool) {
	switch {
	case today.Month() == time.January && today.Day() == 1:
		return newYearLandmark, true
	case today.Day() == 1:
		return monthStartLandmark, true
	case today.Weekday() == time.Monday:
		return mondayLandmark, true
	default:
		return domain.Landmark{}, false
	}
}

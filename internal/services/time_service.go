package services

import (
	"math"
	"time"

	"github.com/robert-osoelectronics/toggl-reports/internal/domain"
	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
)

const (
	secondsPerHour = 3600
	daysPerWeek    = 7
)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct{}

// NewTimeService creates a new TimeService instance
func NewTimeService() TimeService {
	return &timeServiceImpl{}
}

// LastDaysRange returns the closed range (endDate - numDays, endDate).
func (t *timeServiceImpl) LastDaysRange(numDays int, endDate time.Time) (domain.DateRange, error) {
	if numDays < 1 {
		return domain.DateRange{}, errors.NewValidationError("number of days must be at least 1", nil)
	}

	end := truncateToDate(endDate)
	return domain.DateRange{
		Start: end.AddDate(0, 0, -numDays),
		End:   end,
	}, nil
}

// WeekRangeEndingOn returns the range of numWeeks weeks ending on the most
// recent occurrence of weekday on or before previousTo. When previousTo
// falls exactly on the target weekday the offset is zero and previousTo
// itself is the end of the range.
func (t *timeServiceImpl) WeekRangeEndingOn(numWeeks int, weekday time.Weekday, previousTo time.Time) (domain.DateRange, error) {
	if numWeeks < 1 {
		return domain.DateRange{}, errors.NewValidationError("number of weeks must be at least 1", nil)
	}

	ref := truncateToDate(previousTo)
	offset := (daysPerWeek - (int(weekday) - int(ref.Weekday()))) % daysPerWeek
	end := ref.AddDate(0, 0, -offset)
	return domain.DateRange{
		Start: end.AddDate(0, 0, -daysPerWeek*numWeeks),
		End:   end,
	}, nil
}

// RoundHours converts seconds to hours, rounded half away from zero to one
// decimal place. Aggregation sums these rounded values; the report shows
// sums of rounded entries, not rounded sums.
func (t *timeServiceImpl) RoundHours(seconds int64) float64 {
	hours := float64(seconds) / secondsPerHour
	return math.Round(hours*10) / 10
}

func truncateToDate(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

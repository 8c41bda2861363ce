package services

import (
	"time"

	"github.com/robert-osoelectronics/toggl-reports/internal/domain"
	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
)

// TimeService owns date-range arithmetic and duration rounding
type TimeService interface {
	// LastDaysRange returns the closed range ending on endDate and starting
	// numDays earlier.
	LastDaysRange(numDays int, endDate time.Time) (domain.DateRange, error)

	// WeekRangeEndingOn returns the range of numWeeks weeks ending on the
	// most recent occurrence of weekday on or before previousTo.
	WeekRangeEndingOn(numWeeks int, weekday time.Weekday, previousTo time.Time) (domain.DateRange, error)

	// RoundHours converts a duration in seconds to hours rounded to one
	// decimal place.
	RoundHours(seconds int64) float64
}

// ReportingService turns raw search results into the aggregated report
type ReportingService interface {
	// BuildReport groups raw search results by calendar date and sums task
	// hours per day. It fails if any result does not wrap exactly one time
	// entry.
	BuildReport(results []toggl.SearchResult) (*domain.Report, error)
}

// RenderService formats an aggregated report as plain text
type RenderService interface {
	// Render formats the report for stdout. Rendering is deterministic:
	// the same report always yields byte-identical output.
	Render(report *domain.Report) string
}

package services

import (
	"fmt"
	"time"

	"github.com/robert-osoelectronics/toggl-reports/internal/domain"
	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
	"github.com/robert-osoelectronics/toggl-reports/internal/repository/toggl"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	timeService TimeService
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(timeService TimeService) ReportingService {
	return &reportingServiceImpl{
		timeService: timeService,
	}
}

// BuildReport groups raw search results into one DayReport per calendar
// date. Dates appear in first-encountered input order; with the search
// ordered by date this coincides with calendar order. Entries within a day
// keep API order. Every entry is placed exactly once; a result wrapping
// anything other than one nested time entry aborts the whole build.
func (r *reportingServiceImpl) BuildReport(results []toggl.SearchResult) (*domain.Report, error) {
	builders := make(map[time.Time]*domain.DayReportBuilder)
	var dateOrder []time.Time

	for i, result := range results {
		if len(result.TimeEntries) != 1 {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("search result %d (%q) wraps %d time entries, expected exactly 1",
					i, result.Description, len(result.TimeEntries)), nil).
				WithContext("description", result.Description)
		}
		detail := result.TimeEntries[0]

		start, err := time.Parse(time.RFC3339, detail.Start)
		if err != nil {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("search result %d has an invalid start timestamp %q", i, detail.Start), err)
		}
		stop, err := time.Parse(time.RFC3339, detail.Stop)
		if err != nil {
			return nil, errors.NewMalformedResponseError(
				fmt.Sprintf("search result %d has an invalid stop timestamp %q", i, detail.Stop), err)
		}

		entry := domain.NewTimeEntry(
			result.Description,
			r.timeService.RoundHours(detail.Seconds),
			start,
			stop,
		)

		date := entry.Date()
		builder, ok := builders[date]
		if !ok {
			builder = domain.NewDayReportBuilder(date)
			builders[date] = builder
			dateOrder = append(dateOrder, date)
		}
		builder.Add(entry)
	}

	report := &domain.Report{}
	for _, date := range dateOrder {
		report.Days = append(report.Days, builders[date].Build())
	}
	return report, nil
}

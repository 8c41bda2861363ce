package services

import (
	"fmt"
	"strings"

	"github.com/robert-osoelectronics/toggl-reports/internal/domain"
)

const (
	separator   = "----"
	dateLayout  = "Monday Jan 02 2006"
	clockLayout = "15:04"
)

// renderServiceImpl implements the RenderService interface
type renderServiceImpl struct{}

// NewRenderService creates a new RenderService instance
func NewRenderService() RenderService {
	return &renderServiceImpl{}
}

// Render formats the aggregated report as the plain-text block layout the
// external time-reporting system expects: per day a separator, the date,
// the day total, the per-task summary in first-seen order, then the
// individual entries in stored order.
func (r *renderServiceImpl) Render(report *domain.Report) string {
	var sb strings.Builder

	for _, day := range report.Days {
		sb.WriteString(separator + "\n")
		sb.WriteString(day.Date.Format(dateLayout) + "\n")
		fmt.Fprintf(&sb, "Total Time: %3.1f\n", day.TotalHours)

		sb.WriteString("Task Summary:\n")
		for _, task := range day.TaskOrder {
			fmt.Fprintf(&sb, "- %s: %3.1fhrs\n", task, day.TaskTotals[task])
		}

		sb.WriteString("\nTime Entries:\n")
		for _, entry := range day.Entries {
			fmt.Fprintf(&sb, "%s, %s->%s, %3.1fhrs\n",
				entry.Task,
				entry.Start.Format(clockLayout),
				entry.Stop.Format(clockLayout),
				entry.Hours)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

package domain

// Report represents the full aggregated report: one DayReport per distinct
// calendar date, in the order dates were first encountered in the input.
type Report struct {
	Days []*DayReport
}

// EntryCount returns the total number of time entries across all days.
func (r *Report) EntryCount() int {
	count := 0
	for _, day := range r.Days {
		count += len(day.Entries)
	}
	return count
}

// IsEmpty returns true if the report contains no days.
func (r *Report) IsEmpty() bool {
	return len(r.Days) == 0
}

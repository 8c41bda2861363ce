package domain

import (
	"time"
)

// TimeEntry represents one tracked interval of work in the domain model.
// Hours is the entry duration already rounded to one decimal place; day and
// task totals are sums of these rounded values, matching the report the
// external time-reporting system expects.
type TimeEntry struct {
	Task  string
	Hours float64
	Start time.Time
	Stop  time.Time
}

// NewTimeEntry creates a new TimeEntry for the given task.
func NewTimeEntry(task string, hours float64, start, stop time.Time) TimeEntry {
	return TimeEntry{
		Task:  task,
		Hours: hours,
		Start: start,
		Stop:  stop,
	}
}

// Date returns the calendar date the entry belongs to, derived from the
// start timestamp with its time of day dropped.
func (te TimeEntry) Date() time.Time {
	return time.Date(te.Start.Year(), te.Start.Month(), te.Start.Day(), 0, 0, 0, 0, time.UTC)
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.Task == "" {
		return false
	}
	if te.Start.IsZero() || te.Stop.IsZero() {
		return false
	}
	if te.Hours < 0 {
		return false
	}
	return true
}

package domain

import (
	"time"
)

const dateFormat = "2006-01-02"

// DateRange represents a closed calendar date interval. Start and End are
// date-only values; the invariant Start <= End holds for every range
// produced by the time service.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartString returns the start date formatted for the search API.
func (dr DateRange) StartString() string {
	return dr.Start.Format(dateFormat)
}

// EndString returns the end date formatted for the search API.
func (dr DateRange) EndString() string {
	return dr.End.Format(dateFormat)
}

// Days returns the number of days spanned by the range.
func (dr DateRange) Days() int {
	return int(dr.End.Sub(dr.Start).Hours() / 24)
}

// IsValid checks the Start <= End invariant.
func (dr DateRange) IsValid() bool {
	return !dr.Start.After(dr.End)
}

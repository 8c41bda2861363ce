package domain

import (
	"time"
)

// DayReport represents the aggregated view of all time entries falling on
// one calendar date. Entries keep the order they were received from the
// API; TaskOrder records task names in first-seen order so totals can be
// rendered deterministically.
type DayReport struct {
	Date       time.Time
	Entries    []TimeEntry
	TaskOrder  []string
	TaskTotals map[string]float64
	TotalHours float64
}

// DayReportBuilder accumulates time entries for a single date and
// finalizes them into a DayReport. It owns its ordered task-total mapping
// explicitly; there is no default-on-missing-key behaviour.
type DayReportBuilder struct {
	date      time.Time
	entries   []TimeEntry
	taskOrder []string
	totals    map[string]float64
}

// NewDayReportBuilder creates a builder for the given calendar date.
func NewDayReportBuilder(date time.Time) *DayReportBuilder {
	return &DayReportBuilder{
		date:   date,
		totals: make(map[string]float64),
	}
}

// Add appends an entry, preserving insertion order, and accumulates its
// already-rounded hours into the per-task total. Task names are matched
// exactly, case-sensitive.
func (b *DayReportBuilder) Add(entry TimeEntry) {
	b.entries = append(b.entries, entry)
	if _, seen := b.totals[entry.Task]; !seen {
		b.taskOrder = append(b.taskOrder, entry.Task)
	}
	b.totals[entry.Task] += entry.Hours
}

// Build finalizes the accumulated entries into a DayReport. TotalHours is
// the sum of the per-task totals, which are themselves sums of per-entry
// hours rounded to one decimal place.
func (b *DayReportBuilder) Build() *DayReport {
	var total float64
	for _, task := range b.taskOrder {
		total += b.totals[task]
	}
	return &DayReport{
		Date:       b.date,
		Entries:    b.entries,
		TaskOrder:  b.taskOrder,
		TaskTotals: b.totals,
		TotalHours: total,
	}
}

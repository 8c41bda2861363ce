package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-osoelectronics/toggl-reports/internal/errors"
)

func TestTimeService_LastDaysRange(t *testing.T) {
	service := NewTimeService()
	today := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name          string
		numDays       int
		endDate       time.Time
		expectedStart string
		expectedEnd   string
		expectError   bool
	}{
		{
			name:          "default two week lookback",
			numDays:       14,
			endDate:       today,
			expectedStart: "2024-06-01",
			expectedEnd:   "2024-06-15",
		},
		{
			name:          "single day",
			numDays:       1,
			endDate:       today,
			expectedStart: "2024-06-14",
			expectedEnd:   "2024-06-15",
		},
		{
			name:          "crosses month boundary",
			numDays:       20,
			endDate:       today,
			expectedStart: "2024-05-26",
			expectedEnd:   "2024-06-15",
		},
		{
			name:          "crosses year boundary",
			numDays:       14,
			endDate:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			expectedStart: "2023-12-22",
			expectedEnd:   "2024-01-05",
		},
		{
			name:        "zero days rejected",
			numDays:     0,
			endDate:     today,
			expectError: true,
		},
		{
			name:        "negative days rejected",
			numDays:     -3,
			endDate:     today,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := service.LastDaysRange(tt.numDays, tt.endDate)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, dr.StartString())
			assert.Equal(t, tt.expectedEnd, dr.EndString())
			assert.True(t, dr.IsValid())
			assert.Equal(t, tt.numDays, dr.Days())
		})
	}
}

func TestTimeService_WeekRangeEndingOn(t *testing.T) {
	service := NewTimeService()

	tests := []struct {
		name          string
		numWeeks      int
		weekday       time.Weekday
		previousTo    time.Time
		expectedStart string
		expectedEnd   string
		expectError   bool
	}{
		{
			name:          "reference exactly on target weekday yields zero offset",
			numWeeks:      2,
			weekday:       time.Friday,
			previousTo:    time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), // a Friday
			expectedStart: "2024-05-31",
			expectedEnd:   "2024-06-14",
		},
		{
			name:          "reference one day after target weekday",
			numWeeks:      2,
			weekday:       time.Friday,
			previousTo:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), // a Saturday
			expectedStart: "2024-05-31",
			expectedEnd:   "2024-06-14",
		},
		{
			name:          "reference one day before target weekday looks back six days",
			numWeeks:      1,
			weekday:       time.Friday,
			previousTo:    time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), // a Thursday
			expectedStart: "2024-05-31",
			expectedEnd:   "2024-06-07",
		},
		{
			name:          "sunday anchor",
			numWeeks:      1,
			weekday:       time.Sunday,
			previousTo:    time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), // a Wednesday
			expectedStart: "2024-06-02",
			expectedEnd:   "2024-06-09",
		},
		{
			name:        "zero weeks rejected",
			numWeeks:    0,
			weekday:     time.Friday,
			previousTo:  time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := service.WeekRangeEndingOn(tt.numWeeks, tt.weekday, tt.previousTo)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, dr.StartString())
			assert.Equal(t, tt.expectedEnd, dr.EndString())
			assert.Equal(t, tt.weekday, dr.End.Weekday())
		})
	}
}

func TestTimeService_WeekRangeEndingOn_NeverLooksBackMoreThanSixDays(t *testing.T) {
	service := NewTimeService()
	base := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC) // a Sunday

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		ref := base.AddDate(0, 0, dayOffset)
		dr, err := service.WeekRangeEndingOn(1, time.Friday, ref)
		require.NoError(t, err)

		lookback := int(ref.Sub(dr.End).Hours() / 24)
		assert.GreaterOrEqual(t, lookback, 0, "end must not be after the reference")
		assert.LessOrEqual(t, lookback, 6, "end must be within six days of the reference")
		assert.Equal(t, time.Friday, dr.End.Weekday())
	}
}

func TestTimeService_RoundHours(t *testing.T) {
	service := NewTimeService()

	tests := []struct {
		name     string
		seconds  int64
		expected float64
	}{
		{"one hour", 3600, 1.0},
		{"half hour", 1800, 0.5},
		{"quarter hour rounds up", 900, 0.3},
		{"zero", 0, 0.0},
		{"six minutes", 360, 0.1},
		{"two minutes rounds to nearest tenth", 120, 0.0},
		{"eight and a half hours", 30600, 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, service.RoundHours(tt.seconds), 1e-9)
		})
	}
}

package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScheduleRule(t *testing.T) {
	tests := []struct {
		name       string
		rule       ScheduleRule
		valid      bool
		errorCount int
		warnCount  int
	}{
		{
			name:  "Well-formed weekly rule",
			rule:  ScheduleRule{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Monday}},
			valid: true,
		},
		{
			name:       "Missing frequency",
			rule:       ScheduleRule{Interval: 1},
			valid:      false,
			errorCount: 1,
		},
		{
			name:       "Unknown frequency",
			rule:       ScheduleRule{Frequency: "hourly", Interval: 1},
			valid:      false,
			errorCount: 1,
		},
		{
			name:       "Zero interval",
			rule:       ScheduleRule{Frequency: FrequencyWeekly, Interval: 0, DaysOfWeek: []time.Weekday{time.Monday}},
			valid:      false,
			errorCount: 1,
		},
		{
			name:      "Oversized interval warns",
			rule:      ScheduleRule{Frequency: FrequencyMonthly, Interval: 24},
			valid:     true,
			warnCount: 1,
		},
		{
			name:       "Out-of-range weekday",
			rule:       ScheduleRule{Frequency: FrequencyWeekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Monday, 9}},
			valid:      false,
			errorCount: 1,
		},
		{
			name:      "Empty weekday set warns",
			rule:      ScheduleRule{Frequency: FrequencyWeekly, Interval: 1},
			valid:     true,
			warnCount: 1,
		},
		{
			name:       "Monthly day out of range",
			rule:       ScheduleRule{Frequency: FrequencyMonthly, Interval: 1, DayOfMonth: 45},
			valid:      false,
			errorCount: 1,
		},
		{
			name:  "Monthly last day sentinel is legal",
			rule:  ScheduleRule{Frequency: FrequencyMonthly, Interval: 1, DayOfMonth: LastDayOfMonth},
			valid: true,
		},
		{
			name:       "Zero occurrence count",
			rule:       ScheduleRule{Frequency: FrequencyDaily, Interval: 1, End: EndRule{Type: EndAfterOccurrences}},
			valid:      false,
			errorCount: 1,
		},
		{
			name:      "Huge occurrence count warns",
			rule:      ScheduleRule{Frequency: FrequencyDaily, Interval: 1, End: EndRule{Type: EndAfterOccurrences, Occurrences: 5000}},
			valid:     true,
			warnCount: 1,
		},
		{
			name: "Past end date warns but stays valid",
			rule: ScheduleRule{Frequency: FrequencyDaily, Interval: 1,
				End: EndRule{Type: EndOnDate, Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}},
			valid:     true,
			warnCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateScheduleRule(tt.rule)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Len(t, result.Errors, tt.errorCount)
			assert.Len(t, result.Warnings, tt.warnCount)
		})
	}
}

func TestValidateSuggestsIntervalFix(t *testing.T) {
	result := ValidateScheduleRule(ScheduleRule{Frequency: FrequencyWeekly, Interval: 0,
		DaysOfWeek: []time.Weekday{time.Monday}})

	require.False(t, result.IsValid)
	fix, ok := result.SuggestedFix.Get()
	require.True(t, ok)
	interval, ok := fix.Interval.Get()
	require.True(t, ok)
	assert.Equal(t, 1, interval)
}

func TestValidateSuggestsFilteredWeekdays(t *testing.T) {
	result := ValidateScheduleRule(ScheduleRule{Frequency: FrequencyWeekly, Interval: 1,
		DaysOfWeek: []time.Weekday{time.Monday, 12, time.Friday}})

	require.False(t, result.IsValid)
	fix, ok := result.SuggestedFix.Get()
	require.True(t, ok)
	days, ok := fix.DaysOfWeek.Get()
	require.True(t, ok)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, days)
}

func TestValidateSuggestsOccurrenceFix(t *testing.T) {
	result := ValidateScheduleRule(ScheduleRule{Frequency: FrequencyDaily, Interval: 1,
		End: EndRule{Type: EndAfterOccurrences, Occurrences: -5}})

	require.False(t, result.IsValid)
	fix, ok := result.SuggestedFix.Get()
	require.True(t, ok)
	count, ok := fix.Occurrences.Get()
	require.True(t, ok)
	assert.Equal(t, 10, count)
}

func TestValidateNoFixWhenValid(t *testing.T) {
	result := ValidateScheduleRule(ScheduleRule{Frequency: FrequencyDaily, Interval: 1})
	assert.True(t, result.IsValid)
	assert.True(t, result.SuggestedFix.IsAbsent())
}

package recurrence

import (
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestScheduleRuleRRule(t *testing.T) {
	anchor := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) // Monday

	t.Run("Weekly rule matches native expansion where no weekends intervene", func(t *testing.T) {
		rule := ScheduleRule{
			Frequency:  FrequencyWeekly,
			Interval:   1,
			DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
			End:        EndRule{Type: EndAfterOccurrences, Occurrences: 4},
		}

		rr, err := rule.RRule(anchor)
		require.NoError(t, err)

		native := newTestCalculator().Expand(anchor, rule, ExpandOptions{})
		require.Len(t, native, 4)

		// rrule includes the anchor itself when it matches the pattern;
		// the calculator never emits the anchor. Compare past that.
		all := rr.All()
		require.NotEmpty(t, all)
		if all[0].Equal(anchor) {
			all = all[1:]
		}
		require.GreaterOrEqual(t, len(all), 3)
		for i := 0; i < 3; i++ {
			assert.Equal(t, native[i].Date, all[i])
		}
	})

	t.Run("Bi-weekly doubles the RRULE interval", func(t *testing.T) {
		rule := ScheduleRule{Frequency: FrequencyBiWeekly, Interval: 1, DaysOfWeek: []time.Weekday{time.Monday}}
		rr, err := rule.RRule(anchor)
		require.NoError(t, err)
		assert.Contains(t, rr.String(), "INTERVAL=2")
	})

	t.Run("Monthly last day maps to BYMONTHDAY=-1", func(t *testing.T) {
		rule := ScheduleRule{Frequency: FrequencyMonthly, Interval: 1, DayOfMonth: LastDayOfMonth}
		rr, err := rule.RRule(anchor)
		require.NoError(t, err)
		assert.Contains(t, rr.String(), "BYMONTHDAY=-1")
	})

	t.Run("Unknown frequency fails", func(t *testing.T) {
		_, err := ScheduleRule{Frequency: "hourly", Interval: 1}.RRule(anchor)
		assert.Error(t, err)
	})
}

func TestExportICS(t *testing.T) {
	anchor := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	rule := ScheduleRule{
		Frequency:  FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday},
		End:        EndRule{Type: EndAfterOccurrences, Occurrences: 6},
	}

	cal, err := ExportICS(anchor, rule, "Maintenance visit", time.Hour)
	require.NoError(t, err)
	require.Len(t, cal.Children, 1)

	comp := cal.Children[0]
	assert.Equal(t, ical.CompEvent, comp.Name)

	summary := comp.Props.Get(ical.PropSummary)
	require.NotNil(t, summary)
	assert.Equal(t, "Maintenance visit", summary.Value)

	rruleProp := comp.Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rruleProp)
	assert.Contains(t, rruleProp.Value, "FREQ=WEEKLY")
	assert.Contains(t, rruleProp.Value, "COUNT=6")
	assert.False(t, strings.Contains(rruleProp.Value, "DTSTART"), "RRULE value must not embed DTSTART")

	// Round-trips through the rrule parser.
	_, err = rrule.StrToRRule(rruleProp.Value)
	assert.NoError(t, err)
}

package recurrence

import (
	"sort"
	"time"

	"github.com/halden/schedkit/internal/dateutil"
)

// DefaultOverlapWindowDays is the look-ahead used by DetectScheduleConflicts
// when the caller passes a non-positive window.
const DefaultOverlapWindowDays = 30

// DetectScheduleConflicts expands both rules independently over a window of
// the given number of days starting at start, and reports the calendar days
// (day granularity, not time of day) on which both rules produce an
// occurrence. Intended as a pre-creation warning before two recurring
// series are materialized.
func (c *Calculator) DetectScheduleConflicts(a, b ScheduleRule, start time.Time, days int) ScheduleOverlap {
	if days <= 0 {
		days = DefaultOverlapWindowDays
	}
	opts := ExpandOptions{
		Limit: c.config.MaxOccurrences,
		Until: start.AddDate(0, 0, days),
	}

	daysA := make(map[time.Time]struct{})
	for _, occ := range c.Expand(start, a, opts) {
		daysA[dateutil.StartOfDay(occ.Date)] = struct{}{}
	}

	var overlap ScheduleOverlap
	seen := make(map[time.Time]struct{})
	for _, occ := range c.Expand(start, b, opts) {
		day := dateutil.StartOfDay(occ.Date)
		if _, ok := daysA[day]; !ok {
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		overlap.Dates = append(overlap.Dates, day)
	}

	sort.Slice(overlap.Dates, func(i, j int) bool {
		return overlap.Dates[i].Before(overlap.Dates[j])
	})
	overlap.HasConflict = len(overlap.Dates) > 0
	return overlap
}

package conflict

import (
	"fmt"
	"time"

	"github.com/halden/schedkit/event"
	"github.com/halden/schedkit/internal/dateutil"
)

// Rule is a pluggable business-rule checker run alongside the built-in
// temporal overlap check. Implementations must be pure: same inputs, same
// conflicts.
type Rule interface {
	Check(proposed event.Event, existing []event.Event) []Conflict
}

// WorkingHoursRule flags events scheduled outside [StartHour, EndHour) on
// the event's own calendar day.
type WorkingHoursRule struct {
	StartHour int
	EndHour   int
	Severity  Severity
}

func (r *WorkingHoursRule) Check(proposed event.Event, _ []event.Event) []Conflict {
	start := proposed.Start
	startOK := start.Hour() >= r.StartHour && start.Hour() < r.EndHour
	// Closing is measured from the start's midnight, so an end that wraps
	// past midnight is compared against the day the event started rather
	// than its own small clock reading. Running exactly up to closing is
	// allowed.
	closing := dateutil.StartOfDay(start).Add(time.Duration(r.EndHour) * time.Hour)
	endOK := !proposed.End.After(closing)
	if startOK && endOK {
		return nil
	}
	return []Conflict{{
		ID:       conflictID(TypeOutsideWorkingHours, proposed.ID, ""),
		Type:     TypeOutsideWorkingHours,
		Severity: r.Severity,
		Message: fmt.Sprintf("%q falls outside working hours (%02d:00–%02d:00)",
			proposed.Title, r.StartHour, r.EndHour),
		Proposed: proposed,
	}}
}

// CapacityRule flags slots that already hold MaxPerSlot overlapping events.
// A service business that deliberately double-books keeps this advisory or
// raises MaxPerSlot.
type CapacityRule struct {
	MaxPerSlot int
	Severity   Severity
}

func (r *CapacityRule) Check(proposed event.Event, existing []event.Event) []Conflict {
	if r.MaxPerSlot < 1 {
		return nil
	}
	occupied := 0
	for _, ev := range existing {
		if Overlaps(proposed, ev) {
			occupied++
		}
	}
	if occupied < r.MaxPerSlot {
		return nil
	}
	return []Conflict{{
		ID:       conflictID(TypeCapacityExceeded, proposed.ID, ""),
		Type:     TypeCapacityExceeded,
		Severity: r.Severity,
		Message: fmt.Sprintf("slot already holds %d event(s), capacity is %d",
			occupied, r.MaxPerSlot),
		Proposed: proposed,
	}}
}

// MinimumGapRule requires at least Gap between the proposed event and its
// nearest non-overlapping neighbors. Overlapping neighbors are already
// reported as temporal overlaps and are skipped here.
type MinimumGapRule struct {
	Gap      time.Duration
	Severity Severity
}

func (r *MinimumGapRule) Check(proposed event.Event, existing []event.Event) []Conflict {
	if r.Gap <= 0 {
		return nil
	}
	var conflicts []Conflict
	for _, ev := range existing {
		if Overlaps(proposed, ev) {
			continue
		}
		var gap time.Duration
		switch {
		case !ev.End.After(proposed.Start):
			gap = proposed.Start.Sub(ev.End)
		case !proposed.End.After(ev.Start):
			gap = ev.Start.Sub(proposed.End)
		default:
			continue
		}
		if gap >= r.Gap {
			continue
		}
		conflicts = append(conflicts, Conflict{
			ID:       conflictID(TypeMinimumGap, proposed.ID, ev.ID),
			Type:     TypeMinimumGap,
			Severity: r.Severity,
			Message: fmt.Sprintf("only %s between %q and %q, minimum gap is %s",
				gap, proposed.Title, ev.Title, r.Gap),
			Proposed: proposed,
			Existing: ev,
		})
	}
	return conflicts
}

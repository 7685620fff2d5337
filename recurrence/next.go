package recurrence

import (
	"fmt"
	"time"
)

// TimeUntilNext projects a single step of the rule from last (or from now
// when last is zero) and renders a coarse human-readable countdown.
// Weekend adjustment applies to the projection just as it does during
// expansion.
func TimeUntilNext(rule ScheduleRule, last time.Time) NextProjection {
	return timeUntilNextAt(rule, last, time.Now())
}

// timeUntilNextAt is the clock-injected form used by tests.
func timeUntilNextAt(rule ScheduleRule, last, now time.Time) NextProjection {
	if last.IsZero() {
		last = now
	}

	step := newStepper(last, rule)
	if step == nil {
		return NextProjection{HumanReadable: "Unknown"}
	}
	raw, ok := step.next()
	if !ok {
		return NextProjection{HumanReadable: "Unknown"}
	}

	c := Calculator{config: DisabledCacheConfig}
	next := c.makeOccurrence(raw, 1).Date

	until := next.Sub(now)
	return NextProjection{
		Until:         until,
		HumanReadable: humanizeCountdown(until),
	}
}

func humanizeCountdown(d time.Duration) string {
	if d < 0 {
		return "Overdue"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

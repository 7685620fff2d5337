package recurrence

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// RulePatch is a partial rule carrying suggested replacement values for
// fields that failed validation. Only fields with a present Option are part
// of the suggestion.
type RulePatch struct {
	Interval    mo.Option[int]
	DaysOfWeek  mo.Option[[]time.Weekday]
	DayOfMonth  mo.Option[int]
	Occurrences mo.Option[int]
}

func (p RulePatch) isEmpty() bool {
	return p.Interval.IsAbsent() && p.DaysOfWeek.IsAbsent() &&
		p.DayOfMonth.IsAbsent() && p.Occurrences.IsAbsent()
}

// ValidationResult reports rule configuration problems without ever raising
// them, so a UI can render inline field errors while the user types.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	// SuggestedFix is present when at least one error has a mechanical
	// correction.
	SuggestedFix mo.Option[RulePatch]
}

// Soft upper bounds on Interval per frequency. Exceeding one is legal but
// almost always a typo, so it warns instead of erroring.
var intervalSoftLimits = map[Frequency]int{
	FrequencyDaily:    365,
	FrequencyWeekly:   52,
	FrequencyBiWeekly: 26,
	FrequencyMonthly:  12,
	FrequencyCustom:   365,
}

// ValidateScheduleRule checks a rule's configuration and reports errors,
// warnings and suggested fixes. It never mutates the rule.
func ValidateScheduleRule(rule ScheduleRule) ValidationResult {
	var result ValidationResult
	var fix RulePatch

	switch rule.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyCustom:
	case "":
		result.Errors = append(result.Errors, "frequency is required")
	default:
		result.Errors = append(result.Errors,
			fmt.Sprintf("unknown frequency %q", string(rule.Frequency)))
	}

	if rule.Interval < 1 {
		result.Errors = append(result.Errors, "interval must be at least 1")
		fix.Interval = mo.Some(1)
	} else if limit, ok := intervalSoftLimits[rule.Frequency]; ok && rule.Interval > limit {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("interval %d is unusually large for a %s rule (soft limit %d)",
				rule.Interval, string(rule.Frequency), limit))
	}

	if rule.Frequency == FrequencyWeekly || rule.Frequency == FrequencyBiWeekly {
		valid := make([]time.Weekday, 0, len(rule.DaysOfWeek))
		invalid := false
		for _, d := range rule.DaysOfWeek {
			if d < time.Sunday || d > time.Saturday {
				invalid = true
				continue
			}
			valid = append(valid, d)
		}
		if invalid {
			result.Errors = append(result.Errors, "daysOfWeek values must be between 0 (Sunday) and 6 (Saturday)")
			fix.DaysOfWeek = mo.Some(valid)
		}
		if len(rule.DaysOfWeek) == 0 {
			result.Warnings = append(result.Warnings,
				"no daysOfWeek set; the rule falls back to the anchor's weekday")
		}
	}

	if rule.Frequency == FrequencyMonthly {
		if d := rule.DayOfMonth; d != 0 && d != LastDayOfMonth && (d < 1 || d > 31) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("dayOfMonth %d must be -1 (last day) or between 1 and 31", d))
			fix.DayOfMonth = mo.Some(1)
		}
	}

	switch rule.End.Type {
	case EndAfterOccurrences:
		if rule.End.Occurrences < 1 {
			result.Errors = append(result.Errors, "end rule occurrence count must be at least 1")
			fix.Occurrences = mo.Some(10)
		} else if rule.End.Occurrences > 1000 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d occurrences is a very long series and may be slow to expand",
					rule.End.Occurrences))
		}
	case EndOnDate:
		if !rule.End.Date.IsZero() && rule.End.Date.Before(time.Now()) {
			result.Warnings = append(result.Warnings, "end date is in the past")
		}
	}

	result.IsValid = len(result.Errors) == 0
	if !fix.isEmpty() {
		result.SuggestedFix = mo.Some(fix)
	}
	return result
}

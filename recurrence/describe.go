package recurrence

import (
	"fmt"
	"strings"
	"time"
)

// ordinalSuffix is a lookup table for day-of-month suffixes; every index
// not listed takes "th".
var ordinalSuffix = [32]string{
	1: "st", 2: "nd", 3: "rd",
	21: "st", 22: "nd", 23: "rd",
	31: "st",
}

func ordinal(n int) string {
	suffix := "th"
	if n >= 1 && n < len(ordinalSuffix) && ordinalSuffix[n] != "" {
		suffix = ordinalSuffix[n]
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func dayNames(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

// DescribeScheduleRule renders a deterministic natural-language summary of
// a rule, e.g. "Every 2 weeks on Monday, Wednesday, 10 times" or
// "Last day of every month, until 12/31/2025".
func DescribeScheduleRule(rule ScheduleRule) string {
	return describeFrequency(rule) + describeEnd(rule.End)
}

func describeFrequency(rule ScheduleRule) string {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	switch rule.Frequency {
	case FrequencyDaily, FrequencyCustom:
		if interval == 1 {
			return "Every day"
		}
		return fmt.Sprintf("Every %d days", interval)

	case FrequencyWeekly, FrequencyBiWeekly:
		weeks := interval
		if rule.Frequency == FrequencyBiWeekly {
			weeks *= 2
		}
		var clause string
		if weeks == 1 {
			clause = "Every week"
		} else {
			clause = fmt.Sprintf("Every %d weeks", weeks)
		}
		if len(rule.DaysOfWeek) > 0 {
			clause += " on " + dayNames(rule.DaysOfWeek)
		}
		return clause

	case FrequencyMonthly:
		var months string
		if interval == 1 {
			months = "every month"
		} else {
			months = fmt.Sprintf("every %d months", interval)
		}
		switch {
		case rule.DayOfMonth == LastDayOfMonth:
			return "Last day of " + months
		case rule.DayOfMonth > 0:
			return fmt.Sprintf("%s%s on the %s",
				strings.ToUpper(months[:1]), months[1:], ordinal(rule.DayOfMonth))
		default:
			return strings.ToUpper(months[:1]) + months[1:]
		}

	default:
		return "Unknown schedule"
	}
}

func describeEnd(end EndRule) string {
	switch end.Type {
	case EndAfterOccurrences:
		if end.Occurrences > 0 {
			return fmt.Sprintf(", %d times", end.Occurrences)
		}
	case EndOnDate:
		if !end.Date.IsZero() {
			return ", until " + end.Date.Format("1/2/2006")
		}
	}
	return ""
}

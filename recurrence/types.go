package recurrence

import (
	"time"
)

// Frequency identifies the stepping pattern of a schedule rule.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi-weekly"
	FrequencyMonthly  Frequency = "monthly"
	// FrequencyCustom steps a fixed number of calendar days, like daily,
	// but is kept distinct so descriptions and validation can tell the
	// two apart.
	FrequencyCustom Frequency = "custom"
)

// EndRuleType identifies how a recurring series terminates.
type EndRuleType string

const (
	EndNever            EndRuleType = "never"
	EndAfterOccurrences EndRuleType = "occurrences"
	EndOnDate           EndRuleType = "date"
)

// EndRule is the termination condition for a series. Occurrences is read
// only when Type is EndAfterOccurrences; Date only when Type is EndOnDate.
type EndRule struct {
	Type        EndRuleType
	Occurrences int
	Date        time.Time
}

// LastDayOfMonth is the DayOfMonth sentinel meaning "the last calendar day
// of each target month".
const LastDayOfMonth = -1

// ScheduleRule describes an abstract repeating pattern. It is plain data,
// not bound to any storage record; the calculator never mutates it.
type ScheduleRule struct {
	Frequency Frequency
	// Interval means "every N units"; the unit depends on Frequency
	// (for custom it is days). Must be >= 1.
	Interval int
	// DaysOfWeek applies to weekly and bi-weekly rules only. When empty,
	// the rule falls back to the anchor's weekday every Interval weeks.
	DaysOfWeek []time.Weekday
	// DayOfMonth applies to monthly rules only. 0 means "same day as the
	// anchor", LastDayOfMonth means the last day of each month, and 1-31
	// is clamped to the target month's actual length.
	DayOfMonth int
	End        EndRule
	// Timezone is an informational IANA zone label. Arithmetic is carried
	// out in local calendar terms, never UTC-shifted.
	Timezone string
}

// OccurrenceMetadata carries audit information about a single occurrence.
type OccurrenceMetadata struct {
	// IsWeekend is true when the raw computed date fell on a weekend,
	// before any adjustment.
	IsWeekend bool
	IsHoliday bool
	// Adjusted is true when the emitted date was shifted off a weekend;
	// Original then holds the pre-shift date.
	Adjusted bool
	Original *time.Time
}

// Occurrence is one concrete expansion of a schedule rule.
type Occurrence struct {
	Date time.Time
	// Number is 1-based within the expanded series.
	Number   int
	IsLast   bool
	Metadata OccurrenceMetadata
}

// ExpandOptions controls a single expansion call.
type ExpandOptions struct {
	// Limit caps how many occurrences are produced. Zero or negative
	// means DefaultOccurrenceLimit.
	Limit int
	// Until is an optional hard cutoff; occurrences computed past it are
	// not emitted. Zero value means no cutoff.
	Until time.Time
}

// DefaultOccurrenceLimit is used when ExpandOptions.Limit is unset.
const DefaultOccurrenceLimit = 50

// ScheduleOverlap reports the calendar days on which two rules would both
// produce an occurrence.
type ScheduleOverlap struct {
	HasConflict bool
	// Dates holds the colliding days at day granularity (midnight,
	// anchor's location), in ascending order.
	Dates []time.Time
}

// NextProjection is a single-step projection of a rule from a reference
// point in time.
type NextProjection struct {
	// Until is the duration from the reference point to the projected
	// occurrence; negative when the projection is already in the past.
	Until time.Duration
	// HumanReadable is a coarse rendering such as "2d 4h", "3h 15m",
	// "40m", or "Overdue".
	HumanReadable string
}

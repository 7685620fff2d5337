package recurrence

import (
	"io"
	"log/slog"
	"time"

	"github.com/halden/schedkit/internal/dateutil"
)

// Calculator expands schedule rules into concrete occurrences. Expansion is
// a pure function of its inputs; the optional cache only memoizes results
// it would have computed anyway.
type Calculator struct {
	config CalculatorConfig
	cache  *expansionCache
	logger *slog.Logger
}

// New creates a calculator with DefaultCalculatorConfig.
func New() *Calculator {
	return NewWithConfig(DefaultCalculatorConfig)
}

// NewWithConfig creates a calculator with custom configuration.
func NewWithConfig(config CalculatorConfig) *Calculator {
	if config.MaxOccurrences <= 0 {
		config.MaxOccurrences = DefaultCalculatorConfig.MaxOccurrences
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var cache *expansionCache
	if config.CacheEnabled {
		cache = newExpansionCache(config.CacheConfig)
	}

	return &Calculator{
		config: config,
		cache:  cache,
		logger: config.Logger,
	}
}

// Close releases the cache's background cleanup goroutine, if any.
func (c *Calculator) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}

// Expand generates the next occurrences of rule after anchor. The anchor
// itself is never emitted; occurrence 1 is one full step past it.
//
// Expansion stops at whichever comes first: the occurrence limit, the
// rule's own end rule, or the optional Until cutoff. A rule with an
// unrecognized frequency produces no further occurrences rather than an
// error, so callers that skip validation still get a safe, possibly empty,
// result. The final emitted occurrence carries IsLast=true.
func (c *Calculator) Expand(anchor time.Time, rule ScheduleRule, opts ExpandOptions) []Occurrence {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultOccurrenceLimit
	}
	if limit > c.config.MaxOccurrences {
		limit = c.config.MaxOccurrences
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(anchor, rule, limit, opts.Until); ok {
			return cached
		}
	}

	occurrences := c.expand(anchor, rule, limit, opts.Until)

	if c.cache != nil {
		c.cache.set(anchor, rule, limit, opts.Until, occurrences)
	}
	return occurrences
}

func (c *Calculator) expand(anchor time.Time, rule ScheduleRule, limit int, until time.Time) []Occurrence {
	step := newStepper(anchor, rule)
	if step == nil {
		c.logger.Warn("unrecognized frequency, producing no occurrences",
			"frequency", string(rule.Frequency))
		return nil
	}

	var out []Occurrence
	for len(out) < limit {
		raw, ok := step.next()
		if !ok {
			break
		}
		if rule.End.Type == EndOnDate && !rule.End.Date.IsZero() &&
			raw.After(dateutil.EndOfDay(rule.End.Date)) {
			break
		}
		if !until.IsZero() && raw.After(until) {
			break
		}

		out = append(out, c.makeOccurrence(raw, len(out)+1))

		if rule.End.Type == EndAfterOccurrences && len(out) >= rule.End.Occurrences {
			break
		}
	}

	if len(out) > 0 {
		out[len(out)-1].IsLast = true
	}
	return out
}

// makeOccurrence wraps a raw computed date, tagging weekend/holiday
// metadata and shifting weekend dates to the next business day. The raw
// date is preserved in Metadata.Original for auditability.
func (c *Calculator) makeOccurrence(raw time.Time, number int) Occurrence {
	meta := OccurrenceMetadata{IsWeekend: dateutil.IsWeekend(raw)}
	date := raw
	if meta.IsWeekend {
		original := raw
		date = dateutil.NextBusinessDay(raw)
		meta.Adjusted = true
		meta.Original = &original
	}
	if c.config.HolidayFunc != nil {
		meta.IsHoliday = c.config.HolidayFunc(date)
	}
	return Occurrence{Date: date, Number: number, Metadata: meta}
}

// stepper advances a cursor through raw occurrence dates for one rule.
// Weekend adjustment never feeds back into the cursor, so the cadence stays
// anchored to the original pattern.
type stepper interface {
	next() (time.Time, bool)
}

func newStepper(anchor time.Time, rule ScheduleRule) stepper {
	interval := rule.Interval
	if interval < 1 {
		// Unvalidated rules degrade to the smallest safe step instead of
		// looping in place.
		interval = 1
	}

	switch rule.Frequency {
	case FrequencyDaily, FrequencyCustom:
		return &dayStepper{cursor: anchor, days: interval}
	case FrequencyWeekly:
		return newWeekStepper(anchor, rule.DaysOfWeek, interval)
	case FrequencyBiWeekly:
		return newWeekStepper(anchor, rule.DaysOfWeek, 2*interval)
	case FrequencyMonthly:
		return newMonthStepper(anchor, rule.DayOfMonth, interval)
	default:
		return nil
	}
}

type dayStepper struct {
	cursor time.Time
	days   int
}

func (s *dayStepper) next() (time.Time, bool) {
	s.cursor = s.cursor.AddDate(0, 0, s.days)
	return s.cursor, true
}

type weekStepper struct {
	cursor time.Time
	days   []time.Weekday
	weeks  int
}

func newWeekStepper(anchor time.Time, days []time.Weekday, weeks int) *weekStepper {
	return &weekStepper{cursor: anchor, days: days, weeks: weeks}
}

func (s *weekStepper) next() (time.Time, bool) {
	if len(s.days) == 0 {
		s.cursor = s.cursor.AddDate(0, 0, 7*s.weeks)
		return s.cursor, true
	}

	// Search the remainder of the cursor's week (weeks run Sunday through
	// Saturday) before jumping ahead.
	for i := 1; i <= 6-int(s.cursor.Weekday()); i++ {
		cand := s.cursor.AddDate(0, 0, i)
		if s.matches(cand.Weekday()) {
			s.cursor = cand
			return cand, true
		}
	}

	// Week exhausted: jump to the first matching day of the week that is
	// `weeks` weeks ahead.
	weekStart := s.cursor.AddDate(0, 0, -int(s.cursor.Weekday()))
	target := weekStart.AddDate(0, 0, 7*s.weeks)
	for i := 0; i < 7; i++ {
		cand := target.AddDate(0, 0, i)
		if s.matches(cand.Weekday()) {
			s.cursor = cand
			return cand, true
		}
	}
	return time.Time{}, false // unreachable with a non-empty set
}

func (s *weekStepper) matches(wd time.Weekday) bool {
	for _, d := range s.days {
		if d == wd {
			return true
		}
	}
	return false
}

// monthStepper keeps a year/month cursor plus the target day so that
// clamping never causes drift: a rule anchored Jan 31 emits Feb 29 (leap)
// and then Mar 31, not Mar 29.
type monthStepper struct {
	year   int
	month  time.Month
	day    int // LastDayOfMonth or 1-31
	months int
	clock  time.Time // time-of-day and location source
}

func newMonthStepper(anchor time.Time, dayOfMonth, months int) *monthStepper {
	day := dayOfMonth
	if day == 0 {
		day = anchor.Day()
	}
	return &monthStepper{
		year:   anchor.Year(),
		month:  anchor.Month(),
		day:    day,
		months: months,
		clock:  anchor,
	}
}

func (s *monthStepper) next() (time.Time, bool) {
	// Normalize through the first of the month so that e.g. Jan 31 plus
	// one month can never overflow into March.
	first := time.Date(s.year, s.month+time.Month(s.months), 1, 0, 0, 0, 0, s.clock.Location())
	s.year, s.month = first.Year(), first.Month()

	day := s.day
	if day == LastDayOfMonth {
		day = dateutil.DaysInMonth(s.year, s.month)
	} else {
		day = dateutil.ClampDay(s.year, s.month, day)
	}

	return time.Date(s.year, s.month, day,
		s.clock.Hour(), s.clock.Minute(), s.clock.Second(), s.clock.Nanosecond(),
		s.clock.Location()), true
}

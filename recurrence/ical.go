package recurrence

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// rruleOption maps a rule onto an RFC 5545 ROption. Weekend adjustment has
// no RRULE equivalent, so the exported rule describes the raw cadence.
func rruleOption(anchor time.Time, rule ScheduleRule) (rrule.ROption, error) {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}
	opt := rrule.ROption{Interval: interval, Dtstart: anchor}

	switch rule.Frequency {
	case FrequencyDaily, FrequencyCustom:
		opt.Freq = rrule.DAILY
	case FrequencyWeekly, FrequencyBiWeekly:
		opt.Freq = rrule.WEEKLY
		if rule.Frequency == FrequencyBiWeekly {
			opt.Interval = 2 * interval
		}
		for _, d := range rule.DaysOfWeek {
			wd, ok := rruleWeekdays[d]
			if !ok {
				return rrule.ROption{}, fmt.Errorf("invalid weekday %d", int(d))
			}
			opt.Byweekday = append(opt.Byweekday, wd)
		}
	case FrequencyMonthly:
		opt.Freq = rrule.MONTHLY
		switch {
		case rule.DayOfMonth == LastDayOfMonth:
			opt.Bymonthday = []int{-1}
		case rule.DayOfMonth > 0:
			opt.Bymonthday = []int{rule.DayOfMonth}
		}
	default:
		return rrule.ROption{}, fmt.Errorf("frequency %q has no RRULE mapping", string(rule.Frequency))
	}

	switch rule.End.Type {
	case EndAfterOccurrences:
		opt.Count = rule.End.Occurrences
	case EndOnDate:
		opt.Until = rule.End.Date
	}

	return opt, nil
}

// RRule converts the rule into a teambition rrule anchored at anchor, for
// callers that need to hand the pattern to iCalendar-speaking systems.
func (r ScheduleRule) RRule(anchor time.Time) (*rrule.RRule, error) {
	opt, err := rruleOption(anchor, r)
	if err != nil {
		return nil, err
	}
	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("building rrule: %w", err)
	}
	return rr, nil
}

// ExportICS renders the rule as a VCALENDAR holding a single recurring
// VEVENT, suitable for handing a schedule preview to any calendar client.
// Each occurrence's length is eventDuration.
func ExportICS(anchor time.Time, rule ScheduleRule, title string, eventDuration time.Duration) (*ical.Calendar, error) {
	opt, err := rruleOption(anchor, rule)
	if err != nil {
		return nil, err
	}
	// The RRULE property must not repeat DTSTART.
	opt.Dtstart = time.Time{}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//schedkit//scheduling engine//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, uuid.NewString())
	ev.Props.SetText(ical.PropSummary, title)
	ev.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
	ev.Props.SetDateTime(ical.PropDateTimeStart, anchor)
	ev.Props.SetDateTime(ical.PropDateTimeEnd, anchor.Add(eventDuration))
	ev.Props.Set(&ical.Prop{Name: ical.PropRecurrenceRule, Value: opt.RRuleString()})

	cal.Children = append(cal.Children, ev.Component)
	return cal, nil
}

/*
Package recurrence expands abstract schedule rules into concrete calendar
occurrences and validates/describes those rules.

# Basic Usage

	calc := recurrence.New()
	defer calc.Close()

	rule := recurrence.ScheduleRule{
		Frequency:  recurrence.FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
		End:        recurrence.EndRule{Type: recurrence.EndAfterOccurrences, Occurrences: 10},
	}

	if result := recurrence.ValidateScheduleRule(rule); !result.IsValid {
		// render result.Errors inline; result.SuggestedFix carries
		// mechanical corrections
	}

	occurrences := calc.Expand(anchor, rule, recurrence.ExpandOptions{})

Expansion is deterministic and side-effect free: the same anchor, rule and
options always produce the same sequence. The anchor itself is never
emitted; occurrence 1 lies one full step past it. Raw dates landing on a
weekend are shifted to the following Monday with the original date kept in
the occurrence metadata.

# Calendar semantics

All arithmetic happens in the anchor's location, in local calendar terms.
Monthly rules track the target day-of-month independently of clamping, so a
series anchored on January 31 visits February 29 (leap years) and still
returns to March 31.

# Interop

ScheduleRule.RRule and ExportICS bridge rules into RFC 5545 territory for
calendar clients; the weekend adjustment is engine behavior and is not
representable there.
*/
package recurrence

// Command example demonstrates wiring the recurrence calculator and the
// conflict detector together the way a scheduling UI would: expand a rule,
// check each materialized occurrence against the existing calendar, and
// accept one known overlap so it stops being reported.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/halden/schedkit/conflict"
	"github.com/halden/schedkit/conflict/memory"
	"github.com/halden/schedkit/event"
	"github.com/halden/schedkit/recurrence"
)

const rulesYAML = `
working_hours:
  start_hour: 8
  end_hour: 18
  blocking: true
minimum_gap:
  minutes: 15
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	// A bi-weekly maintenance visit, Mondays and Wednesdays, ten times.
	rule := recurrence.ScheduleRule{
		Frequency:  recurrence.FrequencyBiWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
		End:        recurrence.EndRule{Type: recurrence.EndAfterOccurrences, Occurrences: 10},
		Timezone:   "America/New_York",
	}

	if result := recurrence.ValidateScheduleRule(rule); !result.IsValid {
		for _, e := range result.Errors {
			fmt.Println("rule error:", e)
		}
		os.Exit(1)
	}
	fmt.Println("Schedule:", recurrence.DescribeScheduleRule(rule))

	calc := recurrence.NewWithConfig(recurrence.CalculatorConfig{
		CacheEnabled: true,
		CacheConfig:  recurrence.DefaultCacheConfig,
		Logger:       logger,
	})
	defer calc.Close()

	anchor := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	occurrences := calc.Expand(anchor, rule, recurrence.ExpandOptions{})
	for _, occ := range occurrences[:4] {
		marker := ""
		if occ.Metadata.Adjusted {
			marker = fmt.Sprintf(" (moved from %s)", occ.Metadata.Original.Format("Mon Jan 2"))
		}
		fmt.Printf("  #%d %s%s\n", occ.Number, occ.Date.Format("Mon Jan 2 15:04"), marker)
	}

	// The calendar the detector compares against, as it would arrive from
	// an event store, including one legacy-shaped record.
	scheduled := time.Date(2024, 7, 3, 9, 30, 0, 0, time.UTC)
	existing := event.NormalizeAll([]event.Record{
		{ID: "visit-17", Title: "Quarterly inspection", ScheduledDate: &scheduled, DurationMinutes: 120},
	})

	rulesCfg, err := conflict.LoadRulesConfig(strings.NewReader(rulesYAML))
	if err != nil {
		logger.Error("loading rules config", "error", err)
		os.Exit(1)
	}

	store := memory.New()
	detector := conflict.NewDetector(conflict.DetectorConfig{
		Rules:       rulesCfg.Checkers(),
		Resolutions: store,
		Logger:      logger,
	})

	proposed := event.Event{
		ID:    "series-occurrence-1",
		Title: "Maintenance visit",
		Start: occurrences[0].Date,
		End:   occurrences[0].Date.Add(time.Hour),
	}

	result, err := detector.DetectWithResolutions(ctx, proposed, existing)
	if err != nil {
		logger.Error("detection failed", "error", err)
		os.Exit(1)
	}
	for _, c := range result.Conflicts {
		fmt.Printf("conflict [%s/%s]: %s\n", c.Type, c.Severity, c.Message)
	}

	// The dispatcher accepts the overlap: both technicians fit on site.
	for _, c := range result.Conflicts {
		if c.Type == conflict.TypeTemporalOverlap {
			_ = store.Accept(ctx, conflict.Resolution{
				ConflictID: c.ID,
				AcceptedAt: time.Now(),
				Note:       "double-booked on purpose",
			})
		}
	}

	again, _ := detector.DetectWithResolutions(ctx, proposed, existing)
	fmt.Println("conflicts after acceptance:", len(again.Conflicts))
	fmt.Println("can proceed:", again.CanProceed)
}

package conflict

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/halden/schedkit/event"
)

// Detector finds temporal overlaps and business-rule violations between a
// proposed event and a set of existing events. It never mutates storage;
// creation, deletion and acceptance are the caller's job.
type Detector struct {
	config DetectorConfig
	logger *slog.Logger
}

// NewDetector creates a detector with the given configuration.
func NewDetector(config DetectorConfig) *Detector {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Detector{config: config, logger: config.Logger}
}

// Detect compares the proposed event against every existing event and runs
// the configured business rules. Events without usable times are excluded
// from the comparison set rather than failing the call.
func (d *Detector) Detect(proposed event.Event, existing []event.Event) Result {
	result := Result{CanProceed: true}

	if !proposed.HasValidTimes() {
		d.logger.Warn("proposed event has no usable time box, skipping detection",
			"event_id", proposed.ID)
		return result
	}

	comparable := make([]event.Event, 0, len(existing))
	for _, ev := range existing {
		if !ev.HasValidTimes() {
			d.logger.Warn("excluding event with missing time fields",
				"event_id", ev.ID)
			continue
		}
		if ev.ID == proposed.ID {
			continue // an event never conflicts with itself
		}
		comparable = append(comparable, ev)
	}

	for _, ev := range comparable {
		if !Overlaps(proposed, ev) {
			continue
		}
		result.Conflicts = append(result.Conflicts, Conflict{
			ID:       conflictID(TypeTemporalOverlap, proposed.ID, ev.ID),
			Type:     TypeTemporalOverlap,
			Severity: SeverityAdvisory,
			Message: fmt.Sprintf("%q overlaps with %q (%s – %s)",
				proposed.Title, ev.Title,
				ev.Start.Format("Jan 2 15:04"), ev.End.Format("15:04")),
			Proposed: proposed,
			Existing: ev,
		})
	}

	for _, rule := range d.config.Rules {
		result.Conflicts = append(result.Conflicts, rule.Check(proposed, comparable)...)
	}

	sortConflicts(result.Conflicts)
	result.HasConflicts = len(result.Conflicts) > 0
	for _, c := range result.Conflicts {
		if c.Severity == SeverityBlocking {
			result.CanProceed = false
			break
		}
	}
	result.Suggestions = d.suggest(proposed, result.Conflicts)
	return result
}

// Overlaps reports whether two events' half-open intervals [Start, End)
// intersect. Zero-duration events and back-to-back events (one ends exactly
// when the other starts) do not overlap.
func Overlaps(a, b event.Event) bool {
	if !a.End.After(a.Start) || !b.End.After(b.Start) {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// suggest derives remediation hints from the overlap conflicts: the
// earliest start at or after the end of everything the proposal collides
// with.
func (d *Detector) suggest(proposed event.Event, conflicts []Conflict) []string {
	var latestEnd time.Time
	for _, c := range conflicts {
		if c.Type != TypeTemporalOverlap {
			continue
		}
		if c.Existing.End.After(latestEnd) {
			latestEnd = c.Existing.End
		}
	}
	if latestEnd.IsZero() {
		return nil
	}
	return []string{
		fmt.Sprintf("Next free start after the conflicting block: %s",
			latestEnd.Format("Jan 2 2006 15:04")),
	}
}

// sortConflicts orders conflicts deterministically: by start of the
// existing event, then by id. Detection output is stable across calls on
// the same input.
func sortConflicts(conflicts []Conflict) {
	sort.Slice(conflicts, func(i, j int) bool {
		if !conflicts[i].Existing.Start.Equal(conflicts[j].Existing.Start) {
			return conflicts[i].Existing.Start.Before(conflicts[j].Existing.Start)
		}
		return conflicts[i].ID < conflicts[j].ID
	})
}

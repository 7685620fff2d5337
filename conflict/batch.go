package conflict

import (
	"sort"

	"github.com/halden/schedkit/event"
)

// DetectBatch runs Detect for every event against every other event and
// returns a per-event result map keyed by event id. The scan is O(n²)
// pairwise; calendar working sets are hundreds of events, not millions, so
// the naive pass stays cheap enough to run on every refresh.
//
// Each overlapping pair appears once in each side's result. Callers wanting
// a single flat list must coalesce by conflict id; see Coalesce.
func (d *Detector) DetectBatch(events []event.Event) map[string]Result {
	results := make(map[string]Result, len(events))
	for i, ev := range events {
		others := make([]event.Event, 0, len(events)-1)
		others = append(others, events[:i]...)
		others = append(others, events[i+1:]...)
		results[ev.ID] = d.Detect(ev, others)
	}
	return results
}

// Coalesce flattens a batch result map into a de-duplicated conflict list.
// Conflict ids are symmetric, so the A-vs-B and B-vs-A entries collapse
// into one. The output is ordered by conflict id for determinism.
func Coalesce(results map[string]Result) []Conflict {
	seen := make(map[string]struct{})
	var out []Conflict
	for _, result := range results {
		for _, c := range result.Conflicts {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

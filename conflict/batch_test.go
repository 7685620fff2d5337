package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halden/schedkit/event"
)

func TestDetectBatchDeduplicatesAcrossPairs(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	// Three mutually overlapping events: A-B, A-C and B-C all intersect.
	a := mkEvent("a", base, 3*time.Hour)
	b := mkEvent("b", base.Add(time.Hour), 3*time.Hour)
	c := mkEvent("c", base.Add(2*time.Hour), 3*time.Hour)

	results := d.DetectBatch([]event.Event{a, b, c})
	require.Len(t, results, 3)

	// Each event sees two conflicts from its own side.
	for id, result := range results {
		assert.Len(t, result.Conflicts, 2, "event %s", id)
	}

	// Combined, the three pairs yield exactly 3 distinct ids, not 6.
	coalesced := Coalesce(results)
	assert.Len(t, coalesced, 3)
}

func TestDetectBatchNoConflicts(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	events := []event.Event{
		mkEvent("a", base, time.Hour),
		mkEvent("b", base.Add(2*time.Hour), time.Hour),
	}
	results := d.DetectBatch(events)

	require.Len(t, results, 2)
	for _, result := range results {
		assert.False(t, result.HasConflicts)
	}
	assert.Empty(t, Coalesce(results))
}

func TestCoalesceIsOrdered(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	a := mkEvent("a", base, 3*time.Hour)
	b := mkEvent("b", base.Add(time.Hour), 3*time.Hour)
	c := mkEvent("c", base.Add(2*time.Hour), 3*time.Hour)

	first := Coalesce(d.DetectBatch([]event.Event{a, b, c}))
	second := Coalesce(d.DetectBatch([]event.Event{c, a, b}))

	require.Len(t, first, 3)
	assert.Equal(t, conflictIDs(first), conflictIDs(second))
}

func conflictIDs(conflicts []Conflict) []string {
	ids := make([]string, len(conflicts))
	for i, c := range conflicts {
		ids[i] = c.ID
	}
	return ids
}

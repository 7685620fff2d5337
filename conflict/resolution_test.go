package conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/halden/schedkit/event"
)

func TestDetectWithResolutionsFiltersAccepted(t *testing.T) {
	store := new(MockResolutionStore)
	d := NewDetector(DetectorConfig{Resolutions: store})

	a := mkEvent("a", base, 2*time.Hour)
	b := mkEvent("b", base.Add(time.Hour), 2*time.Hour)

	id := conflictID(TypeTemporalOverlap, "a", "b")
	store.On("Get", mock.Anything, id).Return(mo.Some(Resolution{ConflictID: id}), nil)

	result, err := d.DetectWithResolutions(context.Background(), a, []event.Event{b})
	require.NoError(t, err)
	assert.False(t, result.HasConflicts)
	assert.True(t, result.CanProceed)
	assert.Empty(t, result.Suggestions)
	store.AssertExpectations(t)
}

func TestDetectWithResolutionsKeepsUnaccepted(t *testing.T) {
	store := new(MockResolutionStore)
	d := NewDetector(DetectorConfig{Resolutions: store})

	a := mkEvent("a", base, 2*time.Hour)
	b := mkEvent("b", base.Add(time.Hour), 2*time.Hour)

	store.On("Get", mock.Anything, conflictID(TypeTemporalOverlap, "a", "b")).
		Return(mo.None[Resolution](), nil)

	result, err := d.DetectWithResolutions(context.Background(), a, []event.Event{b})
	require.NoError(t, err)
	assert.True(t, result.HasConflicts)
}

func TestDetectWithResolutionsFailsOpen(t *testing.T) {
	store := new(MockResolutionStore)
	d := NewDetector(DetectorConfig{Resolutions: store})

	a := mkEvent("a", base, 2*time.Hour)
	b := mkEvent("b", base.Add(time.Hour), 2*time.Hour)

	store.On("Get", mock.Anything, conflictID(TypeTemporalOverlap, "a", "b")).
		Return(mo.None[Resolution](), errors.New("store unreachable"))

	// A failing lookup means "no prior resolutions known": the conflict is
	// re-shown, never hidden.
	result, err := d.DetectWithResolutions(context.Background(), a, []event.Event{b})
	require.NoError(t, err)
	assert.True(t, result.HasConflicts)
}

func TestDetectWithResolutionsDifferentPairingIsFresh(t *testing.T) {
	store := new(MockResolutionStore)
	d := NewDetector(DetectorConfig{Resolutions: store})

	a := mkEvent("a", base, 2*time.Hour)
	// c replaces a deleted event b at the same slot; the acceptance
	// recorded for the a-b pairing must not suppress a-c.
	c := mkEvent("c", base.Add(time.Hour), 2*time.Hour)

	store.On("Get", mock.Anything, conflictID(TypeTemporalOverlap, "a", "b")).
		Return(mo.Some(Resolution{}), nil).Maybe()
	store.On("Get", mock.Anything, conflictID(TypeTemporalOverlap, "a", "c")).
		Return(mo.None[Resolution](), nil)

	result, err := d.DetectWithResolutions(context.Background(), a, []event.Event{c})
	require.NoError(t, err)
	require.True(t, result.HasConflicts)
	assert.Equal(t, "c", result.Conflicts[0].Existing.ID)
}

func TestDetectWithResolutionsRecomputesSuggestions(t *testing.T) {
	store := new(MockResolutionStore)
	d := NewDetector(DetectorConfig{Resolutions: store})

	a := mkEvent("a", base, 2*time.Hour)                  // 09:00-11:00
	b := mkEvent("b", base.Add(time.Hour), 3*time.Hour)  // 10:00-13:00
	c := mkEvent("c", base.Add(time.Hour), 30*time.Minute) // 10:00-10:30

	// The b overlap is accepted; only the a-c conflict survives, so the
	// suggested restart must follow c's end, not b's.
	idB := conflictID(TypeTemporalOverlap, "a", "b")
	store.On("Get", mock.Anything, idB).Return(mo.Some(Resolution{ConflictID: idB}), nil)
	store.On("Get", mock.Anything, conflictID(TypeTemporalOverlap, "a", "c")).
		Return(mo.None[Resolution](), nil)

	result, err := d.DetectWithResolutions(context.Background(), a, []event.Event{b, c})
	require.NoError(t, err)
	require.Len(t, result.Conflicts, 1)
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "Jul 1 2024 10:30")
	assert.NotContains(t, result.Suggestions[0], "13:00")
}

func TestDetectWithResolutionsWithoutStore(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	a := mkEvent("a", base, 2*time.Hour)
	b := mkEvent("b", base.Add(time.Hour), 2*time.Hour)

	result, err := d.DetectWithResolutions(context.Background(), a, []event.Event{b})
	require.NoError(t, err)
	assert.True(t, result.HasConflicts)
}

package conflict

import (
	"context"

	"github.com/samber/mo"

	"github.com/halden/schedkit/event"
)

// ResolutionStore is the injected persistence boundary for accepted
// conflicts. The engine only reads and records through it; where the
// markers live (database, browser storage, memory) is the caller's
// business.
//
// The acceptance lifecycle the store must honor:
//
//  1. pending: a surfaced conflict has no resolution record.
//  2. accepted: Accept was called for its id; DetectWithResolutions stops
//     reporting that exact pairing.
//  3. superseded: the conflicting event was deleted or rescheduled. The
//     record is stale: callers Remove it (or Sweep, on stores that support
//     it) and a fresh detection pass becomes authoritative. An acceptance
//     never carries over to a different pairing, because the id is derived
//     from the pair.
type ResolutionStore interface {
	// Get returns the resolution for a conflict id, or None when the
	// conflict has not been accepted.
	Get(ctx context.Context, conflictID string) (mo.Option[Resolution], error)
	Accept(ctx context.Context, res Resolution) error
	Remove(ctx context.Context, conflictID string) error
}

// DetectWithResolutions runs Detect and then drops every conflict the
// configured ResolutionStore reports as accepted. A store lookup failure
// fails open: the conflict is kept and re-shown rather than silently
// hidden, and a warning is logged.
//
// Without a configured store this degrades to plain Detect.
func (d *Detector) DetectWithResolutions(ctx context.Context, proposed event.Event, existing []event.Event) (Result, error) {
	result := d.Detect(proposed, existing)
	store := d.config.Resolutions
	if store == nil || len(result.Conflicts) == 0 {
		return result, nil
	}

	kept := result.Conflicts[:0]
	for _, c := range result.Conflicts {
		res, err := store.Get(ctx, c.ID)
		if err != nil {
			d.logger.Warn("resolution lookup failed, keeping conflict",
				"conflict_id", c.ID, "error", err)
			kept = append(kept, c)
			continue
		}
		if res.IsPresent() {
			continue // explicitly accepted, do not re-prompt
		}
		kept = append(kept, c)
	}

	result.Conflicts = kept
	result.HasConflicts = len(kept) > 0
	result.CanProceed = true
	for _, c := range kept {
		if c.Severity == SeverityBlocking {
			result.CanProceed = false
			break
		}
	}
	// Suggestions derived from accepted overlaps would steer the caller
	// around a collision they already waved through.
	result.Suggestions = d.suggest(proposed, kept)
	return result, nil
}

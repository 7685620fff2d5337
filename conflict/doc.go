/*
Package conflict determines whether a proposed time-boxed event collides
with existing events, and lets callers accept specific conflicts so they
stop being re-surfaced.

# Basic Usage

	detector := conflict.NewDetector(conflict.DetectorConfig{
		Rules: []conflict.Rule{
			&conflict.WorkingHoursRule{StartHour: 8, EndHour: 18, Severity: conflict.SeverityAdvisory},
		},
	})

	result := detector.Detect(proposed, existing)
	if result.HasConflicts {
		// render result.Conflicts; result.CanProceed says whether creation
		// may continue anyway
	}

Temporal overlap uses half-open intervals: back-to-back events and
zero-duration events never conflict. Overlap conflicts are advisory, since
a service business may double-book on purpose; business rules choose
their own severity. Detection is deterministic and side-effect free; the
detector reads events, it never stores them.

# Acceptance

Conflict ids are stable and symmetric across the event pair, so a user's
acceptance can be recorded once and honored on every later pass:

	store := memory.New()
	detector = conflict.NewDetector(conflict.DetectorConfig{Resolutions: store})
	store.Accept(ctx, conflict.Resolution{ConflictID: c.ID, AcceptedAt: time.Now()})
	result, err := detector.DetectWithResolutions(ctx, proposed, existing)

A lookup failure fails open: the conflict is shown again rather than
silently hidden.
*/
package conflict

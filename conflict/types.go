package conflict

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/halden/schedkit/event"
)

// Type categorizes a detected conflict.
type Type string

const (
	// TypeTemporalOverlap means two events' time boxes intersect.
	TypeTemporalOverlap Type = "temporal_overlap"
	// TypeOutsideWorkingHours means the proposed event lies outside the
	// configured working window.
	TypeOutsideWorkingHours Type = "outside_working_hours"
	// TypeCapacityExceeded means too many events already occupy the slot.
	TypeCapacityExceeded Type = "capacity_exceeded"
	// TypeMinimumGap means the proposed event starts or ends too close to
	// a neighboring event.
	TypeMinimumGap Type = "minimum_gap"
)

// Severity classifies whether a conflict blocks creation or merely warns.
type Severity string

const (
	SeverityAdvisory Severity = "advisory"
	SeverityBlocking Severity = "blocking"
)

// Conflict is one detected violation between a proposed event and the
// existing set.
type Conflict struct {
	// ID is deterministic: the same pairing and type always hash to the
	// same id, and the id is symmetric in the two events. Batch callers
	// de-duplicate on it.
	ID       string
	Type     Type
	Severity Severity
	Message  string
	Proposed event.Event
	// Existing is the other event in a pairwise conflict; rules that
	// evaluate the proposed event alone leave it zero-valued.
	Existing event.Event
}

// Result is the outcome of one detection call.
type Result struct {
	HasConflicts bool
	Conflicts    []Conflict
	// Suggestions carries optional remediation hints, e.g. the next free
	// start time after the overlapping block.
	Suggestions []string
	// CanProceed is false only when a blocking-severity conflict is
	// present. Plain temporal overlaps warn, they do not lock.
	CanProceed bool
}

// conflictID builds the symmetric deterministic id for a pairing. The pair
// is sorted before hashing so A-vs-B and B-vs-A are the same conflict.
func conflictID(t Type, eventA, eventB string) string {
	lo, hi := eventA, eventB
	if hi < lo {
		lo, hi = hi, lo
	}
	sum := sha1.Sum([]byte(string(t) + "|" + lo + "|" + hi))
	return hex.EncodeToString(sum[:])
}

// Resolution records a user's explicit acceptance of one conflict.
type Resolution struct {
	ConflictID string
	AcceptedAt time.Time
	Note       string
}

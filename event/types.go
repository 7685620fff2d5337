// Package event defines the canonical event shape consumed by the conflict
// detector and the normalization that turns raw storage records into it.
// The engine never persists events; whatever store holds them hands records
// in and takes results back out.
package event

import "time"

// Priority of an event as scheduled by the CRM.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status of an event in the CRM lifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Event is the single canonical time-boxed event shape. Legacy storage
// shapes are converted to this via FromRecord before any detection runs.
type Event struct {
	ID         string
	Title      string
	Start      time.Time
	End        time.Time
	ClientID   string
	ClientName string
	Location   string
	Priority   Priority
	Status     Status
}

// Duration returns the length of the event's time box.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// HasValidTimes reports whether the event carries a usable time box:
// both endpoints set and End not before Start. Events failing this are
// excluded from conflict comparison rather than crashing detection.
func (e Event) HasValidTimes() bool {
	return !e.Start.IsZero() && !e.End.IsZero() && !e.End.Before(e.Start)
}

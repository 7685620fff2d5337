package event

import (
	"time"

	"github.com/google/uuid"
)

// Record is the wire-shape superset accepted from event stores. Two shapes
// exist in the wild: the unified shape carrying StartDateTime/EndDateTime,
// and the older "scheduled service" shape carrying ScheduledDate plus a
// duration in minutes. FromRecord collapses both into Event so the detector
// never branches on shape.
type Record struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Start      *time.Time `json:"startDateTime,omitempty"`
	End        *time.Time `json:"endDateTime,omitempty"`
	ClientID   string     `json:"clientId,omitempty"`
	ClientName string     `json:"clientName,omitempty"`
	Location   string     `json:"location,omitempty"`
	Priority   Priority   `json:"priority,omitempty"`
	Status     Status     `json:"status,omitempty"`

	// Legacy "scheduled service" fields.
	ScheduledDate   *time.Time `json:"scheduledDate,omitempty"`
	DurationMinutes int        `json:"duration,omitempty"`
	ServiceName     string     `json:"serviceName,omitempty"`
}

// FromRecord normalizes a raw record into the canonical Event. The second
// return value is false when no usable time box can be derived; such records
// must be dropped by the caller, not passed on.
func FromRecord(rec Record) (Event, bool) {
	ev := Event{
		ID:         rec.ID,
		Title:      rec.Title,
		ClientID:   rec.ClientID,
		ClientName: rec.ClientName,
		Location:   rec.Location,
		Priority:   rec.Priority,
		Status:     rec.Status,
	}
	if ev.Title == "" {
		ev.Title = rec.ServiceName
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	switch {
	case rec.Start != nil && rec.End != nil:
		ev.Start = *rec.Start
		ev.End = *rec.End
	case rec.Start != nil && rec.DurationMinutes > 0:
		ev.Start = *rec.Start
		ev.End = rec.Start.Add(time.Duration(rec.DurationMinutes) * time.Minute)
	case rec.ScheduledDate != nil:
		ev.Start = *rec.ScheduledDate
		minutes := rec.DurationMinutes
		if minutes <= 0 {
			minutes = 60 // legacy records without a duration default to one hour
		}
		ev.End = ev.Start.Add(time.Duration(minutes) * time.Minute)
	default:
		return Event{}, false
	}

	if !ev.HasValidTimes() {
		return Event{}, false
	}
	return ev, true
}

// NormalizeAll converts a batch of records, silently dropping the ones that
// carry no usable time box.
func NormalizeAll(recs []Record) []Event {
	out := make([]Event, 0, len(recs))
	for _, rec := range recs {
		if ev, ok := FromRecord(rec); ok {
			out = append(out, ev)
		}
	}
	return out
}

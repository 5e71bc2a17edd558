package events

import (
	"time"

	"match-night/utils"
)

// Event kinds emitted after committed mutations.
const (
	BidAccepted            = "bid.accepted"
	ItemStatusChanged      = "item.status_changed"
	PipelineCompleted      = "pipeline.completed"
	SnapshotsMaterialized  = "snapshots.materialized"
)

// Event is a domain change notification. Delivery to subscribers is an
// external concern; the core only hands the event to a Publisher after the
// store mutation has committed.
type Event struct {
	Kind      string         `json:"kind"`
	SessionID string         `json:"session_id"`
	Fields    map[string]any `json:"fields,omitempty"`
	At        time.Time      `json:"at"`
}

// Publisher fans out domain events. Implementations must not block the
// caller on delivery failures; publishing is fire-and-forget.
type Publisher interface {
	Publish(e Event)
}

// LogPublisher writes events to the structured log. It is the default fan-out
// when no broker is configured, which keeps local runs dependency-free.
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the event at info level.
func (p *LogPublisher) Publish(e Event) {
	fields := map[string]any{
		"kind":       e.Kind,
		"session_id": e.SessionID,
		"at":         e.At.UTC().Format(time.RFC3339),
	}
	for k, v := range e.Fields {
		fields[k] = v
	}
	utils.Info("domain event", fields)
}

package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SECTION_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used across the pipelines.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Progress event types published during generation and improvement runs.
const (
	TypeSectionGenerationStarted = "SECTION_GENERATION_STARTED"
	TypeSectionGenerated         = "SECTION_GENERATED"
	TypeSectionFailed            = "SECTION_FAILED"
	TypeSectionImproved          = "SECTION_IMPROVED"
	TypeRunCompleted             = "RUN_COMPLETED"
	TypeRunFailed                = "RUN_FAILED"
)

// NewProgressEvent builds a progress event carrying the document id so a
// single bus topic can serve every session.
func NewProgressEvent(eventType, documentId string, data map[string]interface{}) Event {
	if data == nil {
		data = make(map[string]interface{})
	}
	data["document_id"] = documentId
	data["event"] = eventType
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

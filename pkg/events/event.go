package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TENDER_STAGE_MOVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across services.
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

// Event type codes published by the tracking and snapshot domains. The
// notification worker resolves these against the notification_types registry.
const (
	TypeTenderTrackingAdded   = "TENDER_TRACKING_ADDED"
	TypeTenderTrackingRemoved = "TENDER_TRACKING_REMOVED"
	TypeTenderStageMoved      = "TENDER_STAGE_MOVED"
	TypeSnapshotRunCompleted  = "SNAPSHOT_RUN_COMPLETED"
	TypeDocumentUploaded      = "DOCUMENT_UPLOADED"
)

func New(eventType string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = make(map[string]interface{})
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

package nats

import (
	"context"
	"testing"

	"tenderdesk-be/pkg/events"
)

// The container keeps running when the NATS connection fails, so a nil
// publisher must behave as a no-op rather than crash the caller.
func TestPublisherNilIsNoOp(t *testing.T) {
	var p *Publisher

	evt := events.New(events.TypeTenderStageMoved, map[string]interface{}{
		"tender_id": "t-1",
		"from":      "pending",
		"to":        "review",
	})
	if err := p.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish on nil publisher returned error: %v", err)
	}

	p.Close()
}

func TestPublisherWithoutStreamIsNoOp(t *testing.T) {
	p := &Publisher{}

	evt := events.New(events.TypeSnapshotRunCompleted, map[string]interface{}{"date": "2024-03-11"})
	if err := p.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish without a JetStream context returned error: %v", err)
	}
}

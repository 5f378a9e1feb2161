package dragdrop

import (
	"encoding/json"
	"errors"
	"testing"
)

type dragItem struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

func TestStartSetsState(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1", Title: "tender"}, "pending")

	s := c.State()
	if !s.IsDragging {
		t.Fatal("expected IsDragging after Start")
	}
	if s.DraggedFrom != "pending" {
		t.Errorf("DraggedFrom = %q, want %q", s.DraggedFrom, "pending")
	}
	if s.DragOverTarget != "" {
		t.Errorf("fresh drag should have no hover target, got %q", s.DragOverTarget)
	}
}

func TestStartSerializationFailureResets(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1"}, "pending")

	// channels cannot be marshalled to JSON
	c.Start(make(chan int), "review")

	s := c.State()
	if s.IsDragging {
		t.Error("failed Start should abort the drag entirely")
	}
	if s.DraggedItem != nil || s.DraggedFrom != "" {
		t.Error("failed Start should clear previous drag state")
	}
}

func TestOverAndLeave(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1"}, "pending")

	c.Over("review")
	c.Over("review") // idempotent
	if got := c.State().DragOverTarget; got != "review" {
		t.Fatalf("DragOverTarget = %q, want %q", got, "review")
	}

	// pointer crossed into a child element, not out of the zone
	c.Leave(true)
	if got := c.State().DragOverTarget; got != "review" {
		t.Errorf("Leave over child element cleared hover, got %q", got)
	}

	c.Leave(false)
	if got := c.State().DragOverTarget; got != "" {
		t.Errorf("Leave outside zone kept hover %q", got)
	}
}

func TestDropInvokesCallback(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1", Title: "tender"}, "pending")
	c.Over("inProgress")

	var gotSource, gotTarget string
	var gotItem dragItem
	err := c.Drop("inProgress", func(item json.RawMessage, source, target string) error {
		gotSource, gotTarget = source, target
		return json.Unmarshal(item, &gotItem)
	})
	if err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}
	if gotSource != "pending" || gotTarget != "inProgress" {
		t.Errorf("callback got (%q, %q), want (pending, inProgress)", gotSource, gotTarget)
	}
	if gotItem.Id != "t1" {
		t.Errorf("callback item id = %q, want t1", gotItem.Id)
	}
	if got := c.State().DragOverTarget; got != "" {
		t.Errorf("Drop must clear hover target, got %q", got)
	}
}

func TestDropOnSourceIsNoop(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1"}, "pending")

	called := false
	err := c.Drop("pending", func(json.RawMessage, string, string) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}
	if called {
		t.Error("drop onto the source zone must not invoke the callback")
	}
}

func TestDropFallsBackToState(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1"}, "pending")

	// simulate a lost payload; the controller state is the fallback
	c.mu.Lock()
	c.payload = nil
	c.mu.Unlock()

	called := false
	err := c.Drop("review", func(item json.RawMessage, source, target string) error {
		called = true
		if source != "pending" {
			t.Errorf("fallback source = %q, want pending", source)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}
	if !called {
		t.Error("expected fallback drop to invoke callback")
	}
}

func TestDropWithNothingUsable(t *testing.T) {
	c := NewController()
	// no Start at all
	err := c.Drop("review", func(json.RawMessage, string, string) error {
		t.Error("callback must not fire without a payload")
		return nil
	})
	if err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}
}

func TestDropPropagatesCallbackError(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1"}, "pending")
	c.Over("review")

	want := errors.New("stage move rejected")
	err := c.Drop("review", func(json.RawMessage, string, string) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("Drop error = %v, want %v", err, want)
	}
	if got := c.State().DragOverTarget; got != "" {
		t.Errorf("hover target must clear even on callback error, got %q", got)
	}
}

func TestEndResetsEverything(t *testing.T) {
	c := NewController()
	c.Start(dragItem{Id: "t1"}, "pending")
	c.Over("review")

	c.End()

	s := c.State()
	if s.IsDragging || s.DraggedItem != nil || s.DraggedFrom != "" || s.DragOverTarget != "" {
		t.Errorf("End left residual state: %+v", s)
	}
}

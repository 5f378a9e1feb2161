package dragdrop

import (
	"encoding/json"
	"log"
	"sync"
)

// Controller tracks which item is being dragged, from where, and the current
// hover target. It is deliberately ignorant of what a "drop" means; the owner
// supplies the semantics through the OnDrop callback. Every failure mode
// degrades to "drag does nothing" rather than corrupting state.
type Controller struct {
	mu      sync.Mutex
	state   State
	payload []byte
}

// State is the externally visible drag state.
type State struct {
	IsDragging     bool
	DraggedItem    interface{}
	DraggedFrom    string
	DragOverTarget string
}

// envelope is what gets serialized into the drag payload, mirroring the
// platform dataTransfer blob.
type envelope struct {
	Item   json.RawMessage `json:"item"`
	Source string          `json:"source"`
}

// OnDrop receives the dropped item (raw payload form), its source zone and
// the target zone.
type OnDrop func(item json.RawMessage, source, target string) error

func NewController() *Controller {
	return &Controller{}
}

// State returns a copy of the current drag state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins a drag. If the item cannot be serialized the drag is aborted
// silently: log, reset, carry on.
func (c *Controller) Start(item interface{}, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(item)
	if err != nil {
		log.Printf("dragdrop: failed to serialize drag payload: %v", err)
		c.resetLocked()
		return
	}

	env, err := json.Marshal(envelope{Item: raw, Source: source})
	if err != nil {
		log.Printf("dragdrop: failed to serialize drag envelope: %v", err)
		c.resetLocked()
		return
	}

	c.state = State{
		IsDragging:  true,
		DraggedItem: item,
		DraggedFrom: source,
	}
	c.payload = env
}

// Over records the hovered drop zone. Idempotent.
func (c *Controller) Over(target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.DragOverTarget = target
}

// Leave clears the hover target, but only when the pointer has actually left
// the drop-zone subtree. Crossing child-element boundaries fires leave events
// too, and clearing on those makes the highlight flicker.
func (c *Controller) Leave(pointerStillInside bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pointerStillInside {
		return
	}
	c.state.DragOverTarget = ""
}

// Drop resolves the drag payload and hands it to onDrop, unless the item was
// dropped back onto its source (a no-op move). The hover target is always
// cleared, whatever happens.
func (c *Controller) Drop(target string, onDrop OnDrop) error {
	c.mu.Lock()
	defer func() {
		c.state.DragOverTarget = ""
		c.mu.Unlock()
	}()

	var env envelope
	if err := json.Unmarshal(c.payload, &env); err != nil || len(env.Item) == 0 {
		// Payload missing or malformed; fall back to the last known state.
		raw, merr := json.Marshal(c.state.DraggedItem)
		if merr != nil || c.state.DraggedItem == nil {
			log.Printf("dragdrop: drop with no usable payload, ignoring")
			return nil
		}
		env = envelope{Item: raw, Source: c.state.DraggedFrom}
	}

	if env.Source == target {
		return nil
	}

	if onDrop == nil {
		return nil
	}
	return onDrop(env.Item, env.Source, target)
}

// End terminates the drag and unconditionally resets all state. Called on
// every drag termination: success, cancel, or error.
func (c *Controller) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.state = State{}
	c.payload = nil
}

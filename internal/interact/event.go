package interact

import "time"

// EventKind identifies the semantic kind of an interaction event.
type EventKind string

// Interaction event kinds.
const (
	PointerOver   EventKind = "pointerover"
	PointerOut    EventKind = "pointerout"
	PointerSelect EventKind = "pointerselect"
	PointerDown   EventKind = "pointerdown"
	PointerMove   EventKind = "pointermove"
	PointerUp     EventKind = "pointerup"
	DragEvent     EventKind = "drag"
	ZoomEvent     EventKind = "zoom"
)

// Transform is the pan/zoom transform applied to the visualization. It is
// mutated exclusively by the drag/zoom controller and carried in full on
// every drag and zoom event.
type Transform struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Event is one discrete interaction event synthesized from gesture input.
// Point carries the position for pointer events; Transform carries the
// updated view transform for drag and zoom events.
type Event struct {
	Kind      EventKind  `json:"kind"`
	Hand      Handedness `json:"hand,omitempty"`
	Point     *Point     `json:"point,omitempty"`
	Transform *Transform `json:"transform,omitempty"`
	Target    *Element   `json:"target,omitempty"`
	Time      time.Time  `json:"time"`
	Source    string     `json:"source,omitempty"`
}

// Handler consumes interaction events as they are emitted. Handlers run
// synchronously inside the per-frame calls and must not block.
type Handler func(Event)

package interact

import "github.com/ayusman/mudra/internal/geom"

// ElementKind names the rendered shape kind of a visualization element.
type ElementKind string

// Shape kinds reported by the rendering surface.
const (
	KindCircle   ElementKind = "circle"
	KindRect     ElementKind = "rect"
	KindPath     ElementKind = "path"
	KindPolyline ElementKind = "polyline"
	KindEllipse  ElementKind = "ellipse"
	KindGroup    ElementKind = "g"
	KindText     ElementKind = "text"
)

// Interactable reports whether the kind is eligible to receive synthesized
// pointer events. Group and text containers are excluded because they
// intercept hits meant for their children.
func (k ElementKind) Interactable() bool {
	switch k {
	case KindCircle, KindRect, KindPath, KindPolyline, KindEllipse:
		return true
	default:
		return false
	}
}

// Element references one rendered element of the visualization surface.
// Bounds is the element's screen-space bounding box.
type Element struct {
	ID     string      `json:"id"`
	Kind   ElementKind `json:"kind"`
	Bounds geom.Rect   `json:"bounds"`
}

// Interactable reports whether the element may receive synthesized pointer
// events. A nil element is not interactable.
func (e *Element) Interactable() bool {
	return e != nil && e.Kind.Interactable()
}

// sameElement compares two element references by identity. Two nils match;
// otherwise IDs decide.
func sameElement(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

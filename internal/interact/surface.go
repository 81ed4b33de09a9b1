package interact

import "github.com/ayusman/mudra/internal/geom"

// Surface resolves screen points against the rendered visualization. It is
// an injected capability so the interaction core can run against a fake
// spatial index in tests instead of a live rendering surface.
type Surface interface {
	// HitTest returns the topmost rendered element occupying the screen
	// point, or nil when nothing is there. The returned element need not
	// be interactable; callers filter by kind.
	HitTest(p geom.Point) *Element

	// InsideRegion reports whether the screen point lies inside the
	// visualization's designated interactive region. Implementations with
	// no region configured return false.
	InsideRegion(p geom.Point) bool
}

// Feedback is the drawing sink for per-frame visual feedback. Calls are
// frame-local: the sink is expected to clear between frames. Feedback runs
// even when event emission is suppressed.
type Feedback interface {
	// DrawFingertip marks a fingertip position for one hand.
	DrawFingertip(hand Handedness, p Point)

	// DrawHoverArea outlines the grasp hover circle and its retained
	// sample points, in surface coordinates.
	DrawHoverArea(circle geom.Circle, samples []geom.Point)

	// DrawZoomGuide draws the inter-hand line between the two thumb tips
	// and marks the zoom center, in surface coordinates.
	DrawZoomGuide(a, b, center geom.Point)
}

// NopFeedback is a Feedback that discards all drawing calls.
type NopFeedback struct{}

func (NopFeedback) DrawFingertip(Handedness, Point)         {}
func (NopFeedback) DrawHoverArea(geom.Circle, []geom.Point) {}
func (NopFeedback) DrawZoomGuide(a, b, center geom.Point)   {}

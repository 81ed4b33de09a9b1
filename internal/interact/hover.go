package interact

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// PointHover advances the precision pointer hover state for every hand
// holding the pointing gesture and emits pointerover/pointerout
// transitions against the hit-tested element under the index fingertip.
//
// Enter events fire only for interactable targets; the last-hovered state
// updates regardless, so a non-interactable element still suppresses
// repeat hit-test churn. A hand whose gesture is anything else leaves its
// hover state untouched: leave events fire on gesture-driven hit-test
// changes or hand disappearance, never on mere gesture loss.
func (s *Session) PointHover(f *detector.Frame, drawOnly bool) {
	n := f.HandCount()
	for i := 0; i < n; i++ {
		if ParseGesture(f.Gestures[i]) != GesturePoint {
			continue
		}
		hand := ParseHandedness(f.Handedness[i])
		pt := s.canvas.MapLandmark(f.Landmarks[i][detector.IndexTip])

		// The marker draws every frame the gesture is active, even when
		// emission is suppressed.
		s.feedback.DrawFingertip(hand, pt)
		if drawOnly {
			continue
		}

		el := s.surface.HitTest(pt.Screen)
		prev := s.pointHover[hand]
		if sameElement(el, prev) {
			continue
		}
		if prev.Interactable() {
			s.emit(Event{Kind: PointerOut, Hand: hand, Point: &pt, Target: prev})
		}
		if el.Interactable() {
			s.emit(Event{Kind: PointerOver, Hand: hand, Point: &pt, Target: el})
		}
		s.pointHover[hand] = el
	}

	if drawOnly {
		return
	}

	// Hands gone from the frame lose their hover memory; an interactable
	// element gets its leave so enter/leave stay paired.
	present := presentHands(f)
	for hand, prev := range s.pointHover {
		if present[hand] {
			continue
		}
		if prev.Interactable() {
			p := s.canvas.MapScreen(prev.Bounds.Center())
			s.emit(Event{Kind: PointerOut, Hand: hand, Point: &p, Target: prev})
		}
		delete(s.pointHover, hand)
	}
}

// AreaHover advances the coarse grasp hover state for every hand holding
// the grasp gesture. The five fingertip positions define a minimum
// enclosing circle whose interior is grid-sampled and hit-tested; the
// distinct interactable elements found become the hand's hovered set, and
// the diff against the previous set emits enter/leave events anchored at
// each element's bounding-box center.
//
// Sample points are unstable frame to frame, so anchoring events to the
// element's own geometry gives consumers a deterministic coordinate.
func (s *Session) AreaHover(f *detector.Frame, drawOnly bool) {
	n := f.HandCount()
	for i := 0; i < n; i++ {
		hand := ParseHandedness(f.Handedness[i])
		if ParseGesture(f.Gestures[i]) != GestureGrab {
			if !drawOnly {
				s.clearAreaHover(hand)
			}
			continue
		}

		tips := make([]geom.Point, 0, len(detector.Fingertips))
		for _, idx := range detector.Fingertips {
			tips = append(tips, s.canvas.MapLandmark(f.Landmarks[i][idx]).Surface)
		}
		circle := geom.MinEnclosingCircle(tips)
		samples := geom.GridSample(circle, geom.MinGridDivisions)
		s.feedback.DrawHoverArea(circle, samples)
		if drawOnly {
			continue
		}

		if circle.R <= 0 {
			// Degenerate fingertip cluster: no hover region this frame.
			s.clearAreaHover(hand)
			continue
		}

		next := make(map[string]*Element)
		for _, sp := range samples {
			el := s.surface.HitTest(s.canvas.MapSurface(sp).Screen)
			if el.Interactable() {
				next[el.ID] = el
			}
		}

		prev := s.areaHover[hand]
		for id, el := range next {
			if _, ok := prev[id]; !ok {
				p := s.canvas.MapScreen(el.Bounds.Center())
				s.emit(Event{Kind: PointerOver, Hand: hand, Point: &p, Target: el})
			}
		}
		for id, el := range prev {
			if _, ok := next[id]; !ok {
				p := s.canvas.MapScreen(el.Bounds.Center())
				s.emit(Event{Kind: PointerOut, Hand: hand, Point: &p, Target: el})
			}
		}
		s.areaHover[hand] = next
	}

	if drawOnly {
		return
	}

	// Disappeared hands drop their whole hovered set.
	present := presentHands(f)
	for hand := range s.areaHover {
		if !present[hand] {
			s.clearAreaHover(hand)
		}
	}
}

// clearAreaHover empties a hand's hovered set, emitting a leave event for
// every member.
func (s *Session) clearAreaHover(hand Handedness) {
	prev := s.areaHover[hand]
	if len(prev) == 0 {
		delete(s.areaHover, hand)
		return
	}
	for _, el := range prev {
		p := s.canvas.MapScreen(el.Bounds.Center())
		s.emit(Event{Kind: PointerOut, Hand: hand, Point: &p, Target: el})
	}
	delete(s.areaHover, hand)
}

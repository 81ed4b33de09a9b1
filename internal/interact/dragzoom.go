package interact

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// sustainedHand is one hand currently holding the sustained ok gesture,
// with its mapped fingertip positions for this frame.
type sustainedHand struct {
	hand  Handedness
	index Point
	thumb Point
}

// DragZoom advances the sustained-gesture controller: element drag, canvas
// pan and two-hand zoom.
//
// Where a hand's gesture started decides its role for the whole gesture
// instance. A gesture that began inside the interactive region is locked
// to element manipulation; one that began outside is locked to canvas
// panning, even if the fingertip later crosses the boundary. Two hands
// that both started and currently sit outside the region zoom instead.
// When the sustained-hand count drops from two to one mid-zoom, the first
// pan frame re-emits the transform unchanged so the view does not jump.
func (s *Session) DragZoom(f *detector.Frame, drawOnly bool) {
	n := f.HandCount()

	var active []sustainedHand
	for i := 0; i < n; i++ {
		hand := ParseHandedness(f.Handedness[i])
		if ParseGesture(f.Gestures[i]) != GestureOK {
			if !drawOnly {
				s.endSustained(hand)
			}
			continue
		}
		h := sustainedHand{
			hand:  hand,
			index: s.canvas.MapLandmark(f.Landmarks[i][detector.IndexTip]),
			thumb: s.canvas.MapLandmark(f.Landmarks[i][detector.ThumbTip]),
		}
		// Feedback is frame-local and unconditional for the sustained
		// gesture.
		s.feedback.DrawFingertip(hand, h.index)
		active = append(active, h)
	}
	if len(active) == 2 {
		a, b := active[0].thumb.Surface, active[1].thumb.Surface
		s.feedback.DrawZoomGuide(a, b, geom.Mid(a, b))
	}
	if drawOnly {
		return
	}

	// Hands absent from the frame end their gesture instances too.
	present := presentHands(f)
	for hand := range s.starts {
		if !present[hand] {
			s.endSustained(hand)
		}
	}

	// Latch inside/outside at gesture onset only.
	for _, h := range active {
		st := s.start(h.hand)
		if !st.active {
			st.active = true
			st.inside = s.surface.InsideRegion(h.index.Screen)
		}
	}

	count := len(active)
	if s.prevSustainedCount == 2 && count == 1 {
		// Two-to-one mid-zoom: bridge into panning without a visible jump.
		s.transitionInProgress = true
		s.lastZoomCenter = s.zoom.center
		s.transitionOrigin = active[0].index.Surface
	}
	if s.prevSustainedCount < 2 && count == 2 {
		// Fresh two-hand instance: any leftover distance would corrupt the
		// first scale ratio.
		s.zoom = zoomState{}
	}
	s.prevSustainedCount = count

	switch count {
	case 2:
		a, b := active[0], active[1]
		bothStartedOutside := !s.start(a.hand).inside && !s.start(b.hand).inside
		bothOutsideNow := !s.surface.InsideRegion(a.index.Screen) &&
			!s.surface.InsideRegion(b.index.Screen)
		if bothStartedOutside && bothOutsideNow {
			s.zoomStep(a, b)
			return
		}
		s.zoom.lastDistance = 0
		for _, h := range []sustainedHand{a, b} {
			if s.start(h.hand).inside {
				s.dragStep(h.hand, h.index)
			} else {
				s.panStep(h.hand, h.index)
			}
		}
	case 1:
		h := active[0]
		if s.start(h.hand).inside {
			s.dragStep(h.hand, h.index)
		} else {
			s.panStep(h.hand, h.index)
		}
	default:
		s.teardown()
	}
}

// endSustained closes one hand's sustained gesture instance: an active
// drag releases with a pointerup, the start latch and pan reference drop.
func (s *Session) endSustained(hand Handedness) {
	if st, ok := s.starts[hand]; ok {
		st.active = false
	}
	if d, ok := s.drags[hand]; ok {
		last := d.last
		s.emit(Event{Kind: PointerUp, Hand: hand, Point: &last, Target: d.target})
		delete(s.drags, hand)
	}
	delete(s.panRefs, hand)
}

// teardown resets the controller when no hand holds the sustained gesture.
func (s *Session) teardown() {
	for hand := range s.drags {
		s.endSustained(hand)
	}
	s.starts = make(map[Handedness]*gestureStart)
	s.panRefs = make(map[Handedness]geom.Point)
	if !s.transitionInProgress {
		s.zoom = zoomState{}
	}
	s.transitionInProgress = false
}

// dragStep runs element drag for a hand locked inside the region. The
// first frame hit-tests and grabs; afterwards moves keep targeting the
// grabbed element even when the fingertip slides off it.
func (s *Session) dragStep(hand Handedness, pt Point) {
	d, ok := s.drags[hand]
	if !ok {
		el := s.surface.HitTest(pt.Screen)
		if !el.Interactable() {
			return
		}
		s.drags[hand] = &dragState{target: el, last: pt}
		s.emit(Event{Kind: PointerDown, Hand: hand, Point: &pt, Target: el})
		return
	}
	d.last = pt
	s.emit(Event{Kind: PointerMove, Hand: hand, Point: &pt, Target: d.target})
}

// panStep runs canvas panning for a hand locked outside the region. The
// horizontal delta applies inverted, matching the mirrored coordinate
// mapping; the vertical delta applies as-is. Every frame emits the full
// updated transform.
func (s *Session) panStep(hand Handedness, pt Point) {
	cur := pt.Surface

	if s.transitionInProgress {
		dx := math.Abs(cur.X - s.transitionOrigin.X)
		dy := math.Abs(cur.Y - s.transitionOrigin.Y)
		if dx > transitionReleasePx || dy > transitionReleasePx {
			s.transitionInProgress = false
		}
	}

	ref, ok := s.panRefs[hand]
	if !ok {
		// First frame of a pan, including the frame right after a zoom
		// ended: establish the reference and emit the transform unchanged.
		s.panRefs[hand] = cur
		v := s.view
		s.emit(Event{Kind: DragEvent, Hand: hand, Transform: &v})
		return
	}

	s.view.X -= cur.X - ref.X
	s.view.Y += cur.Y - ref.Y
	s.panRefs[hand] = cur

	v := s.view
	s.emit(Event{Kind: DragEvent, Hand: hand, Transform: &v})
}

// zoomStep runs one frame of two-hand pinch zoom over the thumb-tip
// distance. The first frame only establishes the baseline distance, the
// zoom center and the visualization-space fixed point kept stationary
// under the center; subsequent frames scale by the distance ratio, clamp
// to [MinScale, MaxScale] and re-derive the offset so the fixed point maps
// back to the current center.
func (s *Session) zoomStep(a, b sustainedHand) {
	pa, pb := a.thumb.Surface, b.thumb.Surface
	dist := geom.Dist(pa, pb)
	mid := geom.Mid(pa, pb)
	// Mirror the midpoint into visualization space.
	center := geom.Point{X: s.canvas.Width - mid.X, Y: mid.Y}

	// Pan references are stale while both hands zoom.
	delete(s.panRefs, a.hand)
	delete(s.panRefs, b.hand)

	if s.zoom.lastDistance <= 0 {
		s.zoom.lastDistance = dist
		s.zoom.center = center
		s.zoom.fixed = geom.Point{
			X: (center.X - s.view.X) / s.view.Scale,
			Y: (center.Y - s.view.Y) / s.view.Scale,
		}
		// The center still updates on the baseline frame for transition
		// smoothing; only emission waits for a distance ratio.
		s.lastZoomCenter = center
		return
	}

	if dist > 0 {
		scale := s.view.Scale * (dist / s.zoom.lastDistance)
		if scale < MinScale {
			scale = MinScale
		}
		if scale > MaxScale {
			scale = MaxScale
		}
		s.view.Scale = scale
		s.view.X = center.X - s.zoom.fixed.X*scale
		s.view.Y = center.Y - s.zoom.fixed.Y*scale

		v := s.view
		s.emit(Event{Kind: ZoomEvent, Transform: &v})
	}

	s.zoom.lastDistance = dist
	s.zoom.center = center
	s.lastZoomCenter = center
}

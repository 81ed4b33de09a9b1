package interact

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// Shared test doubles: a fake spatial index, a recording event handler, a
// counting feedback sink and a manual clock.

// fakeSurface hit-tests against a flat element list (topmost last) and an
// optional interactive region.
type fakeSurface struct {
	elements []*Element
	region   *geom.Rect
}

func (fs *fakeSurface) HitTest(p geom.Point) *Element {
	for i := len(fs.elements) - 1; i >= 0; i-- {
		if fs.elements[i].Bounds.Contains(p) {
			return fs.elements[i]
		}
	}
	return nil
}

func (fs *fakeSurface) InsideRegion(p geom.Point) bool {
	return fs.region != nil && fs.region.Contains(p)
}

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) handle(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func (r *recorder) ofKind(kind EventKind) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
}

// countingFeedback tallies drawing calls.
type countingFeedback struct {
	fingertips int
	hoverAreas int
	zoomGuides int
}

func (f *countingFeedback) DrawFingertip(Handedness, Point)         { f.fingertips++ }
func (f *countingFeedback) DrawHoverArea(geom.Circle, []geom.Point) { f.hoverAreas++ }
func (f *countingFeedback) DrawZoomGuide(a, b, center geom.Point)   { f.zoomGuides++ }

func (f *countingFeedback) total() int {
	return f.fingertips + f.hoverAreas + f.zoomGuides
}

// manualClock is an injectable clock for deterministic window expiry.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Unix(1700000000, 0)}
}

func (c *manualClock) now() time.Time {
	return c.t
}

func (c *manualClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// testCanvas is a 640x480 canvas whose screen rect starts at (20, 40), so
// mirroring and offsets stay visible in the math.
func testCanvas() Canvas {
	return Canvas{
		Width:  640,
		Height: 480,
		Rect:   geom.Rect{Left: 20, Top: 40, Width: 640, Height: 480},
	}
}

// lmAtScreen builds a normalized landmark that maps onto the given screen
// point under the canvas's mirrored mapping.
func lmAtScreen(c Canvas, p geom.Point) detector.Point3D {
	sx := c.Width - (p.X - c.Rect.Left)
	sy := p.Y - c.Rect.Top
	return detector.Point3D{X: sx / c.Width, Y: sy / c.Height}
}

// testHand describes one hand of a synthetic frame.
type testHand struct {
	hand    string
	gesture string
	// index and thumb are screen-space fingertip targets.
	index geom.Point
	thumb geom.Point
}

// frameOf assembles a recognizer frame from hand descriptions.
func frameOf(c Canvas, hands ...testHand) *detector.Frame {
	f := &detector.Frame{}
	for _, h := range hands {
		var lm detector.Landmarks
		lm[detector.IndexTip] = lmAtScreen(c, h.index)
		thumb := h.thumb
		if thumb == (geom.Point{}) {
			thumb = h.index
		}
		lm[detector.ThumbTip] = lmAtScreen(c, thumb)
		f.Landmarks = append(f.Landmarks, lm)
		f.Handedness = append(f.Handedness, h.hand)
		f.Gestures = append(f.Gestures, h.gesture)
	}
	return f
}

// grabFrame assembles a one-hand grasp frame whose five fingertips spread
// around a screen-space center.
func grabFrame(c Canvas, hand string, center geom.Point, spread float64) *detector.Frame {
	var lm detector.Landmarks
	offsets := []geom.Point{
		{X: -spread, Y: 0},
		{X: 0, Y: -spread},
		{X: spread, Y: 0},
		{X: 0, Y: spread},
		{X: spread / 2, Y: spread / 2},
	}
	for i, idx := range detector.Fingertips {
		lm[idx] = lmAtScreen(c, geom.Point{X: center.X + offsets[i].X, Y: center.Y + offsets[i].Y})
	}
	return &detector.Frame{
		Landmarks:  []detector.Landmarks{lm},
		Handedness: []string{hand},
		Gestures:   []string{"grabbing"},
	}
}

// newTestSession wires a session around the test doubles.
func newTestSession(fs *fakeSurface) (*Session, *recorder, *countingFeedback, *manualClock) {
	rec := &recorder{}
	fb := &countingFeedback{}
	clock := newManualClock()
	s := New(Config{
		Canvas:   testCanvas(),
		Surface:  fs,
		Feedback: fb,
		Handler:  rec.handle,
		Source:   "hand",
		Now:      clock.now,
	})
	return s, rec, fb, clock
}

func rectElement(id string, kind ElementKind, left, top, w, h float64) *Element {
	return &Element{ID: id, Kind: kind, Bounds: geom.Rect{Left: left, Top: top, Width: w, Height: h}}
}

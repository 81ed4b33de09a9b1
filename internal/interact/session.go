package interact

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// Interaction constants.
const (
	// DefaultClickWindow is the time allowed between the pinch phase and
	// the pointing phase of a composed click.
	DefaultClickWindow = 200 * time.Millisecond
	// MinScale and MaxScale bound the view transform's zoom scale.
	MinScale = 1.0
	MaxScale = 4.0
	// transitionReleasePx is the fingertip displacement, in surface
	// pixels on either axis, that ends zoom-to-drag transition smoothing.
	transitionReleasePx = 5.0
)

// Config holds the injected capabilities and tuning of a Session.
type Config struct {
	// Canvas is the visualization canvas geometry. Update via SetCanvas on
	// resize.
	Canvas Canvas
	// Surface resolves hit-tests and region queries. Required.
	Surface Surface
	// Feedback receives per-frame drawing calls. Defaults to NopFeedback.
	Feedback Feedback
	// Handler receives emitted interaction events. Defaults to a discard.
	Handler Handler
	// Source tags every emitted event, e.g. "hand".
	Source string
	// ClickWindow overrides DefaultClickWindow when positive.
	ClickWindow time.Duration
	// Now supplies the clock; defaults to time.Now. Sampled at each
	// decision point so pending clicks expire independently of frame
	// arrival.
	Now func() time.Time
}

// Session owns all per-hand interaction state for one visualization
// instance. Construct one per surface and advance it once per animation
// frame through the gesture entry points, or through Process. Methods are
// not safe for concurrent use; the driver is expected to be a single
// frame loop.
type Session struct {
	canvas      Canvas
	surface     Surface
	feedback    Feedback
	handler     Handler
	source      string
	clickWindow time.Duration
	now         func() time.Time

	pointHover map[Handedness]*Element
	areaHover  map[Handedness]map[string]*Element
	clicks     map[Handedness]*clickState
	drags      map[Handedness]*dragState
	starts     map[Handedness]*gestureStart
	panRefs    map[Handedness]geom.Point

	view Transform
	zoom zoomState

	// Zoom-to-drag bridging state, live only around the frame where the
	// sustained-hand count drops from two to one.
	lastZoomCenter       geom.Point
	transitionOrigin     geom.Point
	transitionInProgress bool
	prevSustainedCount   int
}

// clickState is the two-phase click composer state for one hand.
type clickState struct {
	pending bool
	start   time.Time
	target  *Element
	anchor  Point
}

func (c *clickState) reset() {
	c.pending = false
	c.target = nil
}

// dragState is the element-drag state for one hand. Once grabbed, the
// target never changes for the life of the gesture.
type dragState struct {
	target *Element
	last   Point
}

// gestureStart latches, for one continuous sustained-gesture instance,
// whether the gesture began inside the visualization's interactive region.
// The latch is the locking rule: it never changes while the gesture holds.
type gestureStart struct {
	active bool
	inside bool
}

// zoomState tracks an in-progress two-hand zoom.
type zoomState struct {
	lastDistance float64
	center       geom.Point
	// fixed is the visualization-space coordinate under the zoom center at
	// gesture start; it stays visually stationary while scaling.
	fixed geom.Point
}

// New creates a Session from the given configuration, applying defaults
// for any omitted optional field.
func New(config Config) *Session {
	if config.Feedback == nil {
		config.Feedback = NopFeedback{}
	}
	if config.Handler == nil {
		config.Handler = func(Event) {}
	}
	if config.ClickWindow <= 0 {
		config.ClickWindow = DefaultClickWindow
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Session{
		canvas:      config.Canvas,
		surface:     config.Surface,
		feedback:    config.Feedback,
		handler:     config.Handler,
		source:      config.Source,
		clickWindow: config.ClickWindow,
		now:         config.Now,
		pointHover:  make(map[Handedness]*Element),
		areaHover:   make(map[Handedness]map[string]*Element),
		clicks:      make(map[Handedness]*clickState),
		drags:       make(map[Handedness]*dragState),
		starts:      make(map[Handedness]*gestureStart),
		panRefs:     make(map[Handedness]geom.Point),
		view:        Transform{Scale: 1},
	}
}

// SetCanvas updates the canvas geometry, e.g. after a window resize.
func (s *Session) SetCanvas(c Canvas) {
	s.canvas = c
}

// View returns the current pan/zoom transform of the visualization.
func (s *Session) View() Transform {
	return s.view
}

// ZoomCenter returns the last known two-hand zoom center in visualization
// space and whether a zoom-to-drag transition is currently bridging.
// Overlays can keep marking the center while the transition settles.
func (s *Session) ZoomCenter() (geom.Point, bool) {
	return s.lastZoomCenter, s.transitionInProgress
}

// Process runs all gesture entry points for one frame. The entry points
// are independent and may equally be called individually, in any order.
func (s *Session) Process(f *detector.Frame, drawOnly bool) {
	s.PointHover(f, drawOnly)
	s.AreaHover(f, drawOnly)
	s.Click(f, drawOnly)
	s.DragZoom(f, drawOnly)
}

// emit stamps and delivers one event.
func (s *Session) emit(ev Event) {
	ev.Time = s.now()
	ev.Source = s.source
	s.handler(ev)
}

// click returns the click composer state for a hand, creating it on first
// use.
func (s *Session) click(hand Handedness) *clickState {
	st, ok := s.clicks[hand]
	if !ok {
		st = &clickState{}
		s.clicks[hand] = st
	}
	return st
}

// start returns the gesture-start latch for a hand, creating it on first
// use.
func (s *Session) start(hand Handedness) *gestureStart {
	st, ok := s.starts[hand]
	if !ok {
		st = &gestureStart{}
		s.starts[hand] = st
	}
	return st
}

// presentHands collects the handedness labels present in a frame,
// regardless of gesture.
func presentHands(f *detector.Frame) map[Handedness]bool {
	present := make(map[Handedness]bool, f.HandCount())
	for i := 0; i < f.HandCount(); i++ {
		present[ParseHandedness(f.Handedness[i])] = true
	}
	return present
}

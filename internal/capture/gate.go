package capture

import (
	"sync"

	"gocv.io/x/gocv"
)

// DefaultHoldFrames keeps the pipeline active for this many quiet frames
// after the last motion, so brief pauses mid-gesture do not drop the rate.
const DefaultHoldFrames = 30

// ActivityGate turns raw motion detection into the pipeline's idle/active
// mode. Motion promotes to active immediately; demotion back to idle
// waits for a configurable run of quiet frames.
type ActivityGate struct {
	mu       sync.Mutex
	detector *MotionDetector
	hold     int
	quiet    int
	active   bool
}

// NewActivityGate creates a gate over a fresh MotionDetector. threshold
// follows NewMotionDetector; holdFrames <= 0 falls back to
// DefaultHoldFrames.
func NewActivityGate(threshold float64, holdFrames int) *ActivityGate {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &ActivityGate{
		detector: NewMotionDetector(threshold),
		hold:     holdFrames,
	}
}

// Observe feeds one frame through motion detection and returns whether
// the pipeline should currently run at the active rate.
func (g *ActivityGate) Observe(frame *gocv.Mat) bool {
	moved, _ := g.detector.Detect(frame)

	g.mu.Lock()
	defer g.mu.Unlock()

	if moved {
		g.active = true
		g.quiet = 0
		return true
	}
	if g.active {
		g.quiet++
		if g.quiet >= g.hold {
			g.active = false
			g.quiet = 0
		}
	}
	return g.active
}

// Active returns the current mode without observing a frame.
func (g *ActivityGate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.active
}

// FPS returns the frame rate for the current mode.
func (g *ActivityGate) FPS() int {
	if g.Active() {
		return ActiveFPS
	}
	return IdleFPS
}

// Reset drops both the mode and the motion baseline.
func (g *ActivityGate) Reset() {
	g.mu.Lock()
	g.active = false
	g.quiet = 0
	g.mu.Unlock()

	g.detector.Reset()
}

// Close releases the underlying detector.
func (g *ActivityGate) Close() {
	g.detector.Close()
}

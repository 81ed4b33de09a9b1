// Package app wires capture, recognition and interaction processing into
// the camera-driven pipeline.
package app

import (
	"fmt"
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interact"
	"github.com/ayusman/mudra/internal/scene"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds configuration options for the application.
type Config struct {
	// Store, when set, records the pipeline's session and events.
	Store *store.Store
	// CameraID selects the capture device.
	CameraID int
	// MotionThresh is the changed-pixel percentage treated as motion.
	MotionThresh float64
	// Canvas maps recognizer landmarks onto the visualization surface.
	// A zero canvas defaults to the capture resolution at origin.
	Canvas interact.Canvas
	// Handlers receive every interaction event the pipeline emits.
	Handlers []interact.Handler
}

// App orchestrates the camera pipeline: frames flow from the camera
// through motion gating and gesture recognition into the interaction
// session, whose events fan out to the configured handlers.
type App struct {
	config     Config
	camera     capture.Camera
	gate       *capture.ActivityGate
	recognizer detector.Recognizer
	scene      *scene.Scene
	session    *interact.Session

	mu        sync.RWMutex
	enabled   bool
	stopCh    chan struct{}
	recorded  *store.Session
	lastEvent string
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.Canvas.Width <= 0 || config.Canvas.Height <= 0 {
		config.Canvas = interact.Canvas{
			Width:  capture.DefaultWidth,
			Height: capture.DefaultHeight,
			Rect: geom.Rect{
				Width:  capture.DefaultWidth,
				Height: capture.DefaultHeight,
			},
		}
	}

	a := &App{
		config: config,
		camera: capture.NewCamera(capture.Config{
			DeviceID: config.CameraID,
			FPS:      capture.IdleFPS,
		}),
		gate:  capture.NewActivityGate(config.MotionThresh, 0),
		scene: scene.New(),
	}
	a.session = interact.New(interact.Config{
		Canvas:  config.Canvas,
		Surface: a.scene,
		Handler: a.handleEvent,
		Source:  "hand",
	})

	// Try MediaPipe first, fall back to the mock recognizer.
	if mp, err := detector.NewMediaPipeRecognizer(detector.DefaultConfig()); err == nil {
		a.recognizer = mp
		log.Println("Using MediaPipe gesture recognition")
	} else {
		log.Printf("MediaPipe not available (%v), using mock recognizer", err)
		a.recognizer = detector.NewMockRecognizer()
	}

	return a
}

// SetEnabled enables or disables interaction processing.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether interaction processing is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetRecognizer sets the gesture recognizer implementation to use.
func (a *App) SetRecognizer(r detector.Recognizer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recognizer = r
}

// Scene returns the surface snapshot holder driving hit tests.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Session returns the interaction session driven by the pipeline.
func (a *App) Session() *interact.Session {
	return a.session
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// LastEvent returns a short description of the most recent event, for
// status display.
func (a *App) LastEvent() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastEvent
}

// Start opens the camera and begins the pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(capture.IdleFPS)

	if a.config.Store != nil {
		rec, err := a.config.Store.Sessions().Begin("hand")
		if err != nil {
			log.Printf("Failed to begin recorded session: %v", err)
		} else {
			a.recorded = rec
		}
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Interaction pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.gate.Close()

	if a.recognizer != nil {
		if err := a.recognizer.Close(); err != nil {
			log.Printf("Error closing recognizer: %v", err)
		}
	}

	if a.recorded != nil && a.config.Store != nil {
		if err := a.config.Store.Sessions().End(a.recorded.ID); err != nil {
			log.Printf("Error ending recorded session: %v", err)
		}
		a.recorded = nil
	}

	log.Println("Interaction pipeline stopped")
}

// handleEvent records an event and fans it out to the configured
// handlers. It runs synchronously inside frame processing.
func (a *App) handleEvent(ev interact.Event) {
	a.mu.Lock()
	a.lastEvent = describeEvent(ev)
	recorded := a.recorded
	a.mu.Unlock()

	if recorded != nil && a.config.Store != nil {
		if err := a.config.Store.Events().Append(store.FromInteract(recorded.ID, ev)); err != nil {
			log.Printf("Failed to record event: %v", err)
		}
	}

	for _, h := range a.config.Handlers {
		h(ev)
	}
}

// describeEvent renders an event as a short status line.
func describeEvent(ev interact.Event) string {
	switch {
	case ev.Target != nil:
		return fmt.Sprintf("%s %s (%s)", ev.Kind, ev.Target.ID, ev.Hand)
	case ev.Transform != nil:
		return fmt.Sprintf("%s scale=%.2f (%.0f, %.0f)",
			ev.Kind, ev.Transform.Scale, ev.Transform.X, ev.Transform.Y)
	default:
		return string(ev.Kind)
	}
}

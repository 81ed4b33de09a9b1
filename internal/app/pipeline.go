package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
)

// runPipeline is the frame loop: read, motion-gate, recognize, process.
//
// The loop idles at a low frame rate until motion promotes it; in active
// mode every frame runs gesture recognition and drives the interaction
// session. Demotion back to idle processes one empty frame so in-flight
// gestures release cleanly (drags get their pointerup, hover clears).
func (a *App) runPipeline(stop <-chan struct{}) {
	active := false
	ticker := time.NewTicker(time.Second / time.Duration(capture.IdleFPS))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			nowActive := a.gate.Observe(frame)
			if nowActive != active {
				active = nowActive
				fps := a.gate.FPS()
				a.camera.SetFPS(fps)
				ticker.Reset(time.Second / time.Duration(fps))

				if active {
					log.Println("Switched to active mode")
				} else {
					log.Println("Switched to idle mode")
					a.session.Process(&detector.Frame{}, false)
				}
			}

			if !active {
				frame.Close()
				continue
			}

			result, err := a.recognizer.Recognize(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error recognizing frame: %v", err)
				continue
			}

			a.session.Process(result, false)
		}
	}
}

// Package interact translates per-frame hand gesture recognition results
// into discrete pointer-style interaction events (hover, click, drag, pan,
// zoom) for a 2D visualization surface.
//
// All state lives on a Session owned by the caller and is advanced once per
// animation frame through the gesture-specific entry points. Execution is
// single-threaded and frame-driven; no method blocks.
package interact

import "strings"

// Gesture is the closed set of recognizer categories the interaction state
// machine reacts to. Anything else parses to GestureNone.
type Gesture int

const (
	// GestureNone is the fallthrough for unrecognized category labels.
	GestureNone Gesture = iota
	// GesturePoint is the extended-index pointing pose ("one"). Drives
	// precision hover and completes a pending click.
	GesturePoint
	// GesturePinch is the thumb-index pinch pose ("pinch"). Arms the
	// two-phase click composer.
	GesturePinch
	// GestureGrab is the open grasp pose ("grabbing"). Drives coarse area
	// hover over the enclosing circle of the fingertips.
	GestureGrab
	// GestureOK is the sustained ok-sign pose ("ok"). Drives element drag,
	// canvas pan and two-hand zoom.
	GestureOK
)

// ParseGesture maps a recognizer category label onto the gesture
// enumeration.
func ParseGesture(label string) Gesture {
	switch strings.ToLower(label) {
	case "one", "pointing_up":
		return GesturePoint
	case "pinch":
		return GesturePinch
	case "grabbing":
		return GestureGrab
	case "ok":
		return GestureOK
	default:
		return GestureNone
	}
}

// String returns the canonical label for the gesture.
func (g Gesture) String() string {
	switch g {
	case GesturePoint:
		return "one"
	case GesturePinch:
		return "pinch"
	case GestureGrab:
		return "grabbing"
	case GestureOK:
		return "ok"
	default:
		return "none"
	}
}

// Handedness classifies a tracked hand. Per-hand interaction state is keyed
// by handedness; the recognizer reports at most one hand per label per
// frame.
type Handedness string

// Recognized handedness labels.
const (
	Left  Handedness = "left"
	Right Handedness = "right"
)

// ParseHandedness normalizes a recognizer handedness label.
func ParseHandedness(label string) Handedness {
	return Handedness(strings.ToLower(label))
}

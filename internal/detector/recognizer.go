package detector

import "gocv.io/x/gocv"

// Recognizer defines the interface for hand gesture recognizer
// implementations.
type Recognizer interface {
	// Recognize analyzes a video frame and returns the tracked hands with
	// their landmarks, handedness and top gesture category. The returned
	// frame is never nil on a nil error; it may carry zero hands.
	Recognize(frame *gocv.Mat) (*Frame, error)

	// Close releases any resources held by the recognizer.
	Close() error
}

// Config holds configuration options for gesture recognition.
type Config struct {
	// MaxHands is the maximum number of hands to track (default: 2).
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

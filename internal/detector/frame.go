package detector

// Frame is one recognizer result: the hands tracked in a single video
// frame. Landmarks, Handedness and Gestures are parallel lists indexed by
// hand; a frame whose lists disagree in length carries no actionable hand
// data.
type Frame struct {
	// Landmarks holds the 21 landmark positions per tracked hand.
	Landmarks []Landmarks `json:"landmarks"`
	// Handedness classifies each hand as "left" or "right".
	Handedness []string `json:"handedness"`
	// Gestures holds the top-ranked gesture category name per hand.
	Gestures []string `json:"gestures"`
	// TimestampMs is the capture time in Unix milliseconds, if known.
	TimestampMs int64 `json:"timestamp_ms,omitempty"`
}

// Aligned reports whether the three parallel lists agree in length and are
// non-empty. Handlers must treat a misaligned frame as carrying no hands.
func (f *Frame) Aligned() bool {
	if f == nil || len(f.Landmarks) == 0 {
		return false
	}
	return len(f.Landmarks) == len(f.Handedness) &&
		len(f.Landmarks) == len(f.Gestures)
}

// HandCount returns the number of usable hands in the frame, zero when the
// frame is absent or misaligned.
func (f *Frame) HandCount() int {
	if !f.Aligned() {
		return 0
	}
	return len(f.Landmarks)
}

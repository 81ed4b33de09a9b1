package detector

import "gocv.io/x/gocv"

// MockRecognizer is a test implementation of the Recognizer interface.
// It allows tests to control the recognition results.
type MockRecognizer struct {
	frame *Frame
	err   error
}

// NewMockRecognizer creates a new MockRecognizer instance.
func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{frame: &Frame{}}
}

// SetFrame sets the frame that will be returned by Recognize.
func (m *MockRecognizer) SetFrame(f *Frame) {
	m.frame = f
}

// SetError sets the error that will be returned by Recognize.
func (m *MockRecognizer) SetError(err error) {
	m.err = err
}

// Recognize returns the pre-configured frame or error.
func (m *MockRecognizer) Recognize(frame *gocv.Mat) (*Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.frame, nil
}

// Close is a no-op for the mock recognizer.
func (m *MockRecognizer) Close() error {
	return nil
}

// PointingLandmarks returns a preset hand with the index fingertip at the
// given normalized position and the remaining fingers curled toward the
// palm below it.
func PointingLandmarks(tipX, tipY float64) Landmarks {
	var lm Landmarks

	palmX := tipX
	palmY := tipY + 0.25

	lm[Wrist] = Point3D{X: palmX, Y: palmY + 0.1}

	// Extended index finger up to the requested tip.
	lm[IndexMCP] = Point3D{X: palmX, Y: palmY - 0.02}
	lm[IndexPIP] = Point3D{X: tipX, Y: tipY + 0.16}
	lm[IndexDIP] = Point3D{X: tipX, Y: tipY + 0.08}
	lm[IndexTip] = Point3D{X: tipX, Y: tipY}

	// Thumb resting across the palm.
	lm[ThumbCMC] = Point3D{X: palmX + 0.04, Y: palmY + 0.06}
	lm[ThumbMCP] = Point3D{X: palmX + 0.05, Y: palmY + 0.02}
	lm[ThumbIP] = Point3D{X: palmX + 0.04, Y: palmY - 0.01}
	lm[ThumbTip] = Point3D{X: palmX + 0.02, Y: palmY - 0.03}

	// Remaining fingers curled.
	curl := func(mcp, pip, dip, tip int, offset float64) {
		lm[mcp] = Point3D{X: palmX - offset, Y: palmY - 0.02}
		lm[pip] = Point3D{X: palmX - offset, Y: palmY - 0.04}
		lm[dip] = Point3D{X: palmX - offset, Y: palmY - 0.01}
		lm[tip] = Point3D{X: palmX - offset, Y: palmY + 0.02}
	}
	curl(MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip, 0.03)
	curl(RingMCP, RingPIP, RingDIP, RingTip, 0.06)
	curl(PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip, 0.09)

	return lm
}

// PinchLandmarks returns a preset hand with thumb and index tips meeting at
// the given normalized position.
func PinchLandmarks(tipX, tipY float64) Landmarks {
	lm := PointingLandmarks(tipX, tipY)
	lm[ThumbTip] = Point3D{X: tipX + 0.005, Y: tipY + 0.005}
	lm[ThumbIP] = Point3D{X: tipX + 0.02, Y: tipY + 0.04}
	return lm
}

// GrabLandmarks returns a preset open-grasp hand whose five fingertips
// spread around the given normalized center at the given normalized spread
// radius.
func GrabLandmarks(centerX, centerY, spread float64) Landmarks {
	var lm Landmarks

	lm[Wrist] = Point3D{X: centerX, Y: centerY + 2*spread}

	lm[ThumbTip] = Point3D{X: centerX - spread, Y: centerY + spread/2}
	lm[IndexTip] = Point3D{X: centerX - spread/2, Y: centerY - spread}
	lm[MiddleTip] = Point3D{X: centerX, Y: centerY - spread}
	lm[RingTip] = Point3D{X: centerX + spread/2, Y: centerY - spread}
	lm[PinkyTip] = Point3D{X: centerX + spread, Y: centerY + spread/2}

	return lm
}

// OKLandmarks returns a preset ok-sign hand with the index fingertip at the
// given normalized position and the thumb tip just beside it.
func OKLandmarks(tipX, tipY float64) Landmarks {
	var lm Landmarks

	lm[Wrist] = Point3D{X: tipX, Y: tipY + 0.3}
	lm[IndexTip] = Point3D{X: tipX, Y: tipY}
	lm[ThumbTip] = Point3D{X: tipX + 0.01, Y: tipY + 0.01}

	// Free fingers extended upward.
	lm[MiddleTip] = Point3D{X: tipX + 0.04, Y: tipY - 0.08}
	lm[RingTip] = Point3D{X: tipX + 0.07, Y: tipY - 0.06}
	lm[PinkyTip] = Point3D{X: tipX + 0.1, Y: tipY - 0.03}

	return lm
}

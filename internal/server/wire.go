package server

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interact"
)

// Client-to-server message types.
const (
	msgScene = "scene"
	msgFrame = "frame"
)

// Server-to-client message types.
const (
	msgResult = "result"
	msgError  = "error"
)

// clientMessage is one inbound WebSocket message. Type selects which of
// the payload fields is meaningful.
type clientMessage struct {
	Type string `json:"type"`

	// Scene carries a full surface snapshot (type "scene").
	Scene *sceneMessage `json:"scene,omitempty"`

	// Frame carries one recognizer frame (type "frame"). With DrawOnly
	// set, the frame produces feedback drawing instructions only.
	Frame    *detector.Frame `json:"frame,omitempty"`
	DrawOnly bool            `json:"draw_only,omitempty"`
}

// sceneMessage describes the client's visualization surface: canvas
// geometry, elements in paint order (topmost last) and the optional
// interactive region, all in screen coordinates.
type sceneMessage struct {
	Canvas   interact.Canvas    `json:"canvas"`
	Elements []interact.Element `json:"elements"`
	Region   *geom.Rect         `json:"region,omitempty"`
}

// resultMessage answers one frame message with the interaction events it
// produced and the feedback drawing instructions for that frame.
type resultMessage struct {
	Type     string           `json:"type"`
	Events   []interact.Event `json:"events"`
	Feedback *frameFeedback   `json:"feedback,omitempty"`
}

// errorMessage reports a rejected message without closing the session.
type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// frameFeedback collects the feedback sink calls made while processing a
// single frame. It implements interact.Feedback.
type frameFeedback struct {
	Fingertips []fingertipMark `json:"fingertips,omitempty"`
	HoverAreas []hoverAreaMark `json:"hover_areas,omitempty"`
	ZoomGuides []zoomGuideMark `json:"zoom_guides,omitempty"`
}

type fingertipMark struct {
	Hand  interact.Handedness `json:"hand"`
	Point interact.Point      `json:"point"`
}

type hoverAreaMark struct {
	Circle  geom.Circle  `json:"circle"`
	Samples []geom.Point `json:"samples,omitempty"`
}

type zoomGuideMark struct {
	A      geom.Point `json:"a"`
	B      geom.Point `json:"b"`
	Center geom.Point `json:"center"`
}

func (f *frameFeedback) DrawFingertip(hand interact.Handedness, pt interact.Point) {
	f.Fingertips = append(f.Fingertips, fingertipMark{Hand: hand, Point: pt})
}

func (f *frameFeedback) DrawHoverArea(circle geom.Circle, samples []geom.Point) {
	f.HoverAreas = append(f.HoverAreas, hoverAreaMark{Circle: circle, Samples: samples})
}

func (f *frameFeedback) DrawZoomGuide(a, b, center geom.Point) {
	f.ZoomGuides = append(f.ZoomGuides, zoomGuideMark{A: a, B: b, Center: center})
}

// empty reports whether the frame produced no drawing instructions.
func (f *frameFeedback) empty() bool {
	return len(f.Fingertips) == 0 && len(f.HoverAreas) == 0 && len(f.ZoomGuides) == 0
}

// reset clears the buffers for the next frame.
func (f *frameFeedback) reset() {
	f.Fingertips = f.Fingertips[:0]
	f.HoverAreas = f.HoverAreas[:0]
	f.ZoomGuides = f.ZoomGuides[:0]
}

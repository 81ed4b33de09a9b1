package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// segment is one scripted stretch of hand motion: up to two hands holding
// one gesture while gliding between screen positions.
type segment struct {
	label   string
	gesture string
	hands   []handPath
	dur     float32
	// spread is the fingertip spread for grasp segments, in normalized
	// landmark units.
	spread float64
}

type handPath struct {
	hand     string
	from, to geom.Point
}

// script is the looping demo choreography: hover, click, grasp hover,
// element drag, canvas pan and two-hand zoom, with short releases between
// the sustained stretches.
func script() []segment {
	return []segment{
		{
			label:   "hover",
			gesture: "one",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 520, Y: 400}, to: geom.Point{X: 180, Y: 150}}},
			dur:     2,
		},
		{
			label:   "hover hold",
			gesture: "one",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 180, Y: 150}, to: geom.Point{X: 182, Y: 152}}},
			dur:     1,
		},
		{
			label:   "click arm",
			gesture: "pinch",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 182, Y: 152}, to: geom.Point{X: 182, Y: 152}}},
			dur:     0.15,
		},
		{
			label:   "click release",
			gesture: "one",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 182, Y: 152}, to: geom.Point{X: 185, Y: 155}}},
			dur:     0.5,
		},
		{
			label:   "grasp hover",
			gesture: "grabbing",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 340, Y: 170}, to: geom.Point{X: 390, Y: 190}}},
			dur:     1.5,
			spread:  0.09,
		},
		{
			label:   "element drag",
			gesture: "ok",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 200, Y: 220}, to: geom.Point{X: 320, Y: 280}}},
			dur:     2,
		},
		{
			label:   "release",
			gesture: "none",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 320, Y: 280}, to: geom.Point{X: 320, Y: 280}}},
			dur:     0.5,
		},
		{
			label:   "canvas pan",
			gesture: "ok",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 60, Y: 400}, to: geom.Point{X: 70, Y: 200}}},
			dur:     2,
		},
		{
			label:   "release",
			gesture: "none",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 70, Y: 200}, to: geom.Point{X: 70, Y: 200}}},
			dur:     0.5,
		},
		{
			label:   "two-hand zoom",
			gesture: "ok",
			hands: []handPath{
				{hand: "right", from: geom.Point{X: 260, Y: 450}, to: geom.Point{X: 120, Y: 450}},
				{hand: "left", from: geom.Point{X: 380, Y: 450}, to: geom.Point{X: 520, Y: 450}},
			},
			dur: 2.5,
		},
		{
			label:   "release",
			gesture: "none",
			hands:   []handPath{{hand: "right", from: geom.Point{X: 320, Y: 450}, to: geom.Point{X: 320, Y: 450}}},
			dur:     1,
		},
	}
}

// scriptPlayer advances the choreography and synthesizes recognizer
// frames from the tweened hand positions.
type scriptPlayer struct {
	segments []segment
	index    int
	tweens   [][2]*gween.Tween
}

func newScriptPlayer(segments []segment) *scriptPlayer {
	p := &scriptPlayer{segments: segments}
	p.rewind(0)
	return p
}

// rewind resets the tweens for the given segment.
func (p *scriptPlayer) rewind(index int) {
	p.index = index
	seg := p.segments[index]
	p.tweens = p.tweens[:0]
	for _, h := range seg.hands {
		p.tweens = append(p.tweens, [2]*gween.Tween{
			gween.New(float32(h.from.X), float32(h.to.X), seg.dur, ease.InOutQuad),
			gween.New(float32(h.from.Y), float32(h.to.Y), seg.dur, ease.InOutQuad),
		})
	}
}

// Advance steps the script by dt seconds and returns the synthesized
// frame plus the current segment label.
func (p *scriptPlayer) Advance(dt float32) (*detector.Frame, string) {
	seg := p.segments[p.index]

	frame := &detector.Frame{}
	finished := false
	for i, h := range seg.hands {
		x, _ := p.tweens[i][0].Update(dt)
		y, done := p.tweens[i][1].Update(dt)
		finished = finished || done

		if seg.gesture == "none" {
			continue
		}
		frame.Landmarks = append(frame.Landmarks,
			handLandmarks(seg.gesture, geom.Point{X: float64(x), Y: float64(y)}, seg.spread))
		frame.Handedness = append(frame.Handedness, h.hand)
		frame.Gestures = append(frame.Gestures, seg.gesture)
	}

	if finished {
		p.rewind((p.index + 1) % len(p.segments))
	}
	return frame, seg.label
}

// handLandmarks maps a screen position back to normalized landmark space
// (mirrored x) and builds the fixture for the gesture.
func handLandmarks(gesture string, sp geom.Point, spread float64) detector.Landmarks {
	nx := (screenW - sp.X) / screenW
	ny := sp.Y / screenH

	switch gesture {
	case "one":
		return detector.PointingLandmarks(nx, ny)
	case "pinch":
		return detector.PinchLandmarks(nx, ny)
	case "grabbing":
		return detector.GrabLandmarks(nx, ny, spread)
	case "ok":
		return detector.OKLandmarks(nx, ny)
	default:
		return detector.PointingLandmarks(nx, ny)
	}
}

package interact

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// Point carries one position in both coordinate spaces: surface
// (canvas-local pixels) and screen (absolute viewport coordinates usable
// for hit-testing). Screen x is mirrored relative to surface x to
// compensate for camera-mirrored input.
type Point struct {
	Surface geom.Point `json:"surface"`
	Screen  geom.Point `json:"screen"`
}

// Canvas describes the visualization canvas: its pixel dimensions and its
// bounding rectangle in screen space.
type Canvas struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Rect   geom.Rect `json:"rect"`
}

// MapLandmark converts a normalized [0,1] landmark position into an
// interaction point. Pure; no error conditions.
func (c Canvas) MapLandmark(lm detector.Point3D) Point {
	return c.MapSurface(geom.Point{X: lm.X * c.Width, Y: lm.Y * c.Height})
}

// MapSurface completes a surface-space point with its mirrored screen
// counterpart.
func (c Canvas) MapSurface(p geom.Point) Point {
	return Point{
		Surface: p,
		Screen: geom.Point{
			X: c.Rect.Left + (c.Width - p.X),
			Y: c.Rect.Top + p.Y,
		},
	}
}

// MapScreen completes a screen-space point with its mirrored surface
// counterpart. Inverse of MapSurface.
func (c Canvas) MapScreen(p geom.Point) Point {
	return Point{
		Surface: geom.Point{
			X: c.Width - (p.X - c.Rect.Left),
			Y: p.Y - c.Rect.Top,
		},
		Screen: p,
	}
}

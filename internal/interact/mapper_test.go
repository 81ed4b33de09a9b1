package interact

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

func TestMapLandmark(t *testing.T) {
	c := Canvas{
		Width:  640,
		Height: 480,
		Rect:   geom.Rect{Left: 100, Top: 50, Width: 640, Height: 480},
	}

	pt := c.MapLandmark(detector.Point3D{X: 0.25, Y: 0.5})

	if pt.Surface.X != 160 || pt.Surface.Y != 240 {
		t.Errorf("surface = (%f, %f), want (160, 240)", pt.Surface.X, pt.Surface.Y)
	}
	// Screen x mirrors: left + (width - surfaceX).
	if pt.Screen.X != 100+(640-160) || pt.Screen.Y != 50+240 {
		t.Errorf("screen = (%f, %f), want (580, 290)", pt.Screen.X, pt.Screen.Y)
	}
}

func TestMapLandmark_Corners(t *testing.T) {
	c := testCanvas()

	topLeft := c.MapLandmark(detector.Point3D{X: 0, Y: 0})
	if topLeft.Surface.X != 0 || topLeft.Screen.X != c.Rect.Left+c.Width {
		t.Errorf("normalized x=0 should mirror to the right screen edge, got %f",
			topLeft.Screen.X)
	}

	bottomRight := c.MapLandmark(detector.Point3D{X: 1, Y: 1})
	if bottomRight.Surface.X != c.Width || bottomRight.Screen.X != c.Rect.Left {
		t.Errorf("normalized x=1 should mirror to the left screen edge, got %f",
			bottomRight.Screen.X)
	}
}

func TestMapScreenRoundTrip(t *testing.T) {
	c := testCanvas()

	orig := geom.Point{X: 123.5, Y: 456.25}
	pt := c.MapSurface(orig)
	back := c.MapScreen(pt.Screen)

	if math.Abs(back.Surface.X-orig.X) > 1e-9 || math.Abs(back.Surface.Y-orig.Y) > 1e-9 {
		t.Errorf("round trip = (%f, %f), want (%f, %f)",
			back.Surface.X, back.Surface.Y, orig.X, orig.Y)
	}
	if back.Screen != pt.Screen {
		t.Errorf("screen changed in round trip: %v != %v", back.Screen, pt.Screen)
	}
}

package scene

import (
	"sync"
	"testing"

	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interact"
)

func element(id string, kind interact.ElementKind, left, top, w, h float64) interact.Element {
	return interact.Element{
		ID:     id,
		Kind:   kind,
		Bounds: geom.Rect{Left: left, Top: top, Width: w, Height: h},
	}
}

func TestHitTest_TopmostWins(t *testing.T) {
	s := New()
	s.Replace(Snapshot{Elements: []interact.Element{
		element("under", interact.KindRect, 100, 100, 100, 100),
		element("over", interact.KindCircle, 150, 150, 100, 100),
	}})

	// Overlap: the later element paints on top.
	el := s.HitTest(geom.Point{X: 160, Y: 160})
	if el == nil || el.ID != "over" {
		t.Fatalf("HitTest in overlap = %v, want over", el)
	}

	el = s.HitTest(geom.Point{X: 110, Y: 110})
	if el == nil || el.ID != "under" {
		t.Fatalf("HitTest outside overlap = %v, want under", el)
	}

	if s.HitTest(geom.Point{X: 500, Y: 500}) != nil {
		t.Error("HitTest off every element should return nil")
	}
}

func TestHitTest_EmptyScene(t *testing.T) {
	s := New()
	if s.HitTest(geom.Point{X: 10, Y: 10}) != nil {
		t.Error("empty scene should never hit")
	}
	if s.InsideRegion(geom.Point{X: 10, Y: 10}) {
		t.Error("empty scene has no interactive region")
	}
}

func TestInsideRegion(t *testing.T) {
	s := New()
	region := geom.Rect{Left: 100, Top: 100, Width: 200, Height: 200}
	s.Replace(Snapshot{Region: &region})

	if !s.InsideRegion(geom.Point{X: 150, Y: 150}) {
		t.Error("point inside the region reported outside")
	}
	if s.InsideRegion(geom.Point{X: 350, Y: 150}) {
		t.Error("point beyond the region reported inside")
	}

	// Replacing with a region-less snapshot makes everything outside.
	s.Replace(Snapshot{})
	if s.InsideRegion(geom.Point{X: 150, Y: 150}) {
		t.Error("region should clear on snapshot replacement")
	}
}

func TestReplace_CopiesSnapshot(t *testing.T) {
	elements := []interact.Element{
		element("a", interact.KindRect, 100, 100, 50, 50),
	}
	region := geom.Rect{Left: 0, Top: 0, Width: 640, Height: 480}

	s := New()
	s.Replace(Snapshot{Elements: elements, Region: &region})

	// Caller mutations after Replace must not leak into the scene.
	elements[0].Bounds.Left = 900
	region.Width = 0

	if el := s.HitTest(geom.Point{X: 110, Y: 110}); el == nil || el.ID != "a" {
		t.Error("scene saw caller mutation of the element slice")
	}
	if !s.InsideRegion(geom.Point{X: 320, Y: 240}) {
		t.Error("scene saw caller mutation of the region")
	}
}

func TestHitTest_ReturnsCopy(t *testing.T) {
	s := New()
	s.Replace(Snapshot{Elements: []interact.Element{
		element("a", interact.KindRect, 100, 100, 50, 50),
	}})

	el := s.HitTest(geom.Point{X: 110, Y: 110})
	el.Bounds.Left = 900

	if again := s.HitTest(geom.Point{X: 110, Y: 110}); again == nil {
		t.Error("mutating a returned element corrupted the snapshot")
	}
}

func TestConcurrentReplaceAndQuery(t *testing.T) {
	s := New()
	region := geom.Rect{Left: 0, Top: 0, Width: 640, Height: 480}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Replace(Snapshot{
					Elements: []interact.Element{
						element("a", interact.KindCircle, 100, 100, 50, 50),
					},
					Region: &region,
				})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.HitTest(geom.Point{X: 110, Y: 110})
				s.InsideRegion(geom.Point{X: 110, Y: 110})
				s.ElementCount()
			}
		}()
	}
	wg.Wait()
}

// Package scene holds the client-supplied snapshot of the visualization
// surface and answers the spatial queries interaction processing needs.
package scene

import (
	"sync"

	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interact"
)

// Snapshot is one atomic description of the surface: elements in paint
// order (topmost last) with screen-space bounds, plus an optional
// interactive region rect.
type Snapshot struct {
	Elements []interact.Element
	Region   *geom.Rect
}

// Scene is a concurrency-safe holder for the latest surface snapshot.
// It implements interact.Surface; snapshot replacement is atomic, so a
// frame being processed sees a single consistent element list.
type Scene struct {
	mu       sync.RWMutex
	elements []interact.Element
	region   *geom.Rect
}

// New creates an empty Scene. Until the first Replace, hit tests miss and
// every point counts as outside the interactive region.
func New() *Scene {
	return &Scene{}
}

// Replace swaps in a new snapshot, discarding the previous one.
func (s *Scene) Replace(snap Snapshot) {
	elements := make([]interact.Element, len(snap.Elements))
	copy(elements, snap.Elements)

	var region *geom.Rect
	if snap.Region != nil {
		r := *snap.Region
		region = &r
	}

	s.mu.Lock()
	s.elements = elements
	s.region = region
	s.mu.Unlock()
}

// HitTest returns the topmost element whose bounds contain the screen
// point, or nil when no element does. Elements later in the snapshot
// paint above earlier ones and win the tie.
func (s *Scene) HitTest(p geom.Point) *interact.Element {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Bounds.Contains(p) {
			el := s.elements[i]
			return &el
		}
	}
	return nil
}

// InsideRegion reports whether the screen point falls inside the
// interactive region. A snapshot without a region makes every point
// outside.
func (s *Scene) InsideRegion(p geom.Point) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.region != nil && s.region.Contains(p)
}

// ElementCount returns the number of elements in the current snapshot.
func (s *Scene) ElementCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.elements)
}

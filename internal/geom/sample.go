package geom

// Grid sampling constants.
const (
	// MinGridDivisions is the minimum number of grid cells per axis when
	// sampling a circle's interior.
	MinGridDivisions = 10
	// gridCellPixels is the target cell size in pixels; larger circles get
	// proportionally more divisions so sampling density stays roughly
	// constant.
	gridCellPixels = 4.0
)

// GridSample returns the points of a square grid laid over the circle's
// bounding box that fall inside the circle. The grid has at least
// minDivisions cells per axis, growing with the radius. Sample points sit
// at cell centers.
//
// A circle with zero or negative radius yields no samples.
func GridSample(c Circle, minDivisions int) []Point {
	if c.R <= 0 {
		return nil
	}
	if minDivisions < 1 {
		minDivisions = MinGridDivisions
	}

	divisions := int((2 * c.R) / gridCellPixels)
	if divisions < minDivisions {
		divisions = minDivisions
	}

	step := (2 * c.R) / float64(divisions)
	left := c.Center.X - c.R
	top := c.Center.Y - c.R

	samples := make([]Point, 0, divisions*divisions)
	for row := 0; row < divisions; row++ {
		y := top + (float64(row)+0.5)*step
		for col := 0; col < divisions; col++ {
			p := Point{X: left + (float64(col)+0.5)*step, Y: y}
			if c.Contains(p) {
				samples = append(samples, p)
			}
		}
	}
	return samples
}

package geom

// MinEnclosingCircle computes the smallest circle containing all the given
// points using the incremental Welzl construction.
//
// Degenerate inputs never fail: an empty set yields the zero circle, a
// single point or coincident points yield a zero-radius circle at that
// point, and collinear points yield the diameter circle of the farthest
// pair.
func MinEnclosingCircle(points []Point) Circle {
	if len(points) == 0 {
		return Circle{}
	}

	c := Circle{Center: points[0], R: 0}
	for i := 1; i < len(points); i++ {
		if c.Contains(points[i]) {
			continue
		}
		c = circleWithPoint(points[:i], points[i])
	}
	return c
}

// circleWithPoint returns the minimum circle over points with q on its
// boundary.
func circleWithPoint(points []Point, q Point) Circle {
	c := Circle{Center: q, R: 0}
	for i, p := range points {
		if c.Contains(p) {
			continue
		}
		c = circleWithTwoPoints(points[:i], p, q)
	}
	return c
}

// circleWithTwoPoints returns the minimum circle over points with p and q
// on its boundary.
func circleWithTwoPoints(points []Point, p, q Point) Circle {
	c := circleFromTwo(p, q)
	for _, r := range points {
		if c.Contains(r) {
			continue
		}
		c = circleFromThree(p, q, r)
	}
	return c
}

// circleFromTwo returns the circle with the segment pq as its diameter.
func circleFromTwo(p, q Point) Circle {
	center := Mid(p, q)
	return Circle{Center: center, R: Dist(center, p)}
}

// circleFromThree returns the circumcircle of three points. For collinear
// points the circumcenter is undefined, so the diameter circle of the
// farthest pair is returned instead.
func circleFromThree(a, b, c Point) Circle {
	bx := b.X - a.X
	by := b.Y - a.Y
	cx := c.X - a.X
	cy := c.Y - a.Y

	d := 2 * (bx*cy - by*cx)
	if d > -containsEps && d < containsEps {
		return widestPairCircle(a, b, c)
	}

	ux := (cy*(bx*bx+by*by) - by*(cx*cx+cy*cy)) / d
	uy := (bx*(cx*cx+cy*cy) - cx*(bx*bx+by*by)) / d

	center := Point{X: a.X + ux, Y: a.Y + uy}
	return Circle{Center: center, R: Dist(center, a)}
}

// widestPairCircle returns the diameter circle of the farthest pair among
// three (effectively collinear) points.
func widestPairCircle(a, b, c Point) Circle {
	best := circleFromTwo(a, b)
	if alt := circleFromTwo(a, c); alt.R > best.R {
		best = alt
	}
	if alt := circleFromTwo(b, c); alt.R > best.R {
		best = alt
	}
	return best
}

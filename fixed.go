package regpoly

import "golang.org/x/image/math/fixed"

// Fixed converts p to 26.6 fixed-point, rounding to the nearest 1/64.
// This is the coordinate format used by golang.org/x/image font and
// vector rasterizers.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// PointFromFixed converts a 26.6 fixed-point coordinate back to a Point.
func PointFromFixed(q fixed.Point26_6) Point {
	return Point{X: float64(q.X) / 64, Y: float64(q.Y) / 64}
}

// FixedVertices returns Vertices in 26.6 fixed-point.
func (p Polygon) FixedVertices() []fixed.Point26_6 {
	v := p.Vertices()
	out := make([]fixed.Point26_6, len(v))
	for i, pt := range v {
		out[i] = pt.Fixed()
	}
	return out
}

func toFixed(v float64) fixed.Int26_6 {
	if v < 0 {
		return -fixed.Int26_6(-v*64 + 0.5)
	}
	return fixed.Int26_6(v*64 + 0.5)
}

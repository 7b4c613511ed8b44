package regpoly

import "math"

// Translate returns a copy of p with its center moved by (dx, dy).
// A non-finite offset leaves the polygon where it is.
func (p Polygon) Translate(dx, dy float64) Polygon {
	if !isFinite(dx) || !isFinite(dy) {
		Logger().Debug("regpoly: non-finite translation ignored", "dx", dx, "dy", dy)
		return p
	}
	q := p
	q.center = p.center.Add(Point{X: dx, Y: dy})
	return q
}

// Rotate returns a copy of p rotated by angle radians about its center.
// The angle is added to the stored rotation without normalization.
// A non-finite angle leaves the polygon unrotated.
func (p Polygon) Rotate(angle float64) Polygon {
	if !isFinite(angle) {
		Logger().Debug("regpoly: non-finite rotation ignored", "angle", angle)
		return p
	}
	q := p
	q.rotation = p.rotation + angle
	return q
}

// Scale returns a polygon with the same center, rotation and side count
// whose circumradius is pct times that of p. pct is clamped to [0, 1]; NaN
// is treated as 0. Side length and inradius are recomputed from the scaled
// circumradius.
func (p Polygon) Scale(pct float64) Polygon {
	clamped := clampUnit(pct)
	if clamped != pct {
		Logger().Debug("regpoly: scale factor clamped", "pct", pct, "used", clamped)
	}
	return fromCircumradius(p.sides, p.circumradius*clamped, p.center, p.rotation)
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// NormalizedRotation returns the rotation reduced into [0, 2π).
func (p Polygon) NormalizedRotation() float64 {
	r := math.Mod(p.rotation, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		return 0
	}
	return r
}

// Matrix returns the affine transformation that maps the unit polygon
// (see [UnitVertices]) onto p: scale by the circumradius, rotate by the
// rotation, then translate to the center.
func (p Polygon) Matrix() Matrix {
	return Translate(p.center.X, p.center.Y).
		Multiply(Rotate(p.rotation)).
		Multiply(Scale(p.circumradius, p.circumradius))
}

// ToLocal maps pt into the frame of the unit polygon (see [UnitVertices]):
// the center goes to the origin, the first vertex to (1, 0). ok is false
// for invalid or degenerate polygons, which have no such frame.
func (p Polygon) ToLocal(pt Point) (local Point, ok bool) {
	if !p.IsValid() {
		return Point{}, false
	}
	inv, ok := p.Matrix().Invert()
	if !ok {
		return Point{}, false
	}
	return inv.TransformPoint(pt), true
}

// FromLocal maps a point in the unit polygon frame back onto p.
// FromLocal(ToLocal(pt)) returns pt up to rounding.
func (p Polygon) FromLocal(local Point) Point {
	return p.Matrix().TransformPoint(local)
}

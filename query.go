package regpoly

import "math"

// Vertices returns the polygon's n vertices in counter-clockwise order,
// starting at the rotation angle. Adjacent entries are joined by a side,
// and the last vertex connects back to the first.
func (p Polygon) Vertices() []Point {
	if !p.IsValid() {
		return nil
	}
	step := 2.0 * math.Pi / float64(p.sides)
	v := make([]Point, p.sides)
	for i := range v {
		v[i] = p.center.Polar(p.circumradius, p.rotation+step*float64(i))
	}
	return v
}

// UnitVertices returns the vertices of the n-sided polygon with
// circumradius 1 centered at the origin with zero rotation.
// It returns nil when n < 3.
func UnitVertices(n int) []Point {
	if n < 3 {
		return nil
	}
	return fromCircumradius(n, 1, Point{}, 0).Vertices()
}

// SideMidpoints returns the midpoint of every side, in the same winding
// order as Vertices: entry i lies between vertex i and vertex i+1, and the
// last entry lies between the last vertex and the first.
func (p Polygon) SideMidpoints() []Point {
	v := p.Vertices()
	m := make([]Point, len(v))
	for i := range v {
		m[i] = v[i].Midpoint(v[(i+1)%len(v)])
	}
	return m
}

// Edges returns the sides as vertex pairs in winding order.
func (p Polygon) Edges() [][2]Point {
	v := p.Vertices()
	e := make([][2]Point, len(v))
	for i := range v {
		e[i] = [2]Point{v[i], v[(i+1)%len(v)]}
	}
	return e
}

// InteriorAngle returns the angle, in radians, between two adjacent sides
// measured inside the polygon.
func (p Polygon) InteriorAngle() float64 {
	n := float64(p.sides)
	return (n - 2.0) / n * math.Pi
}

// ExteriorAngle returns the angle, in radians, between two adjacent sides
// measured outside the polygon: 2π minus the interior angle.
func (p Polygon) ExteriorAngle() float64 {
	return 2.0*math.Pi - p.InteriorAngle()
}

// Sagitta returns circumradius minus inradius, the largest gap between a
// side and the circumscribed circle.
func (p Polygon) Sagitta() float64 {
	return p.circumradius - p.inradius
}

// Perimeter returns the total length of all sides.
func (p Polygon) Perimeter() float64 {
	return float64(p.sides) * p.sideLength
}

// Area returns the enclosed area.
func (p Polygon) Area() float64 {
	return 0.5 * p.Perimeter() * p.inradius
}

// Bounds returns the tight axis-aligned bounds of the vertices.
func (p Polygon) Bounds() Rect {
	r := emptyRect()
	for _, v := range p.Vertices() {
		r = r.Extend(v)
	}
	return r
}

// BoundsAll returns the union of the bounds of all polygons.
// The result is empty (MinX > MaxX) when no valid polygon is given.
func BoundsAll(polys ...Polygon) Rect {
	r := emptyRect()
	for _, p := range polys {
		if p.IsValid() {
			r = r.Union(p.Bounds())
		}
	}
	return r
}

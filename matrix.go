package regpoly

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Polygon.Matrix uses it to place the unit polygon; Polygon.ToLocal uses
// its inverse.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Translate returns a transform that shifts points by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{A: 1, C: dx, E: 1, F: dy}
}

// Rotate returns a counter-clockwise rotation by angle radians about the
// origin.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Scale returns a transform that scales x by sx and y by sy.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Multiply returns m*other, which applies other first and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform. ok is false when m collapses the
// plane (|det| below 1e-300, or non-finite), in which case the returned
// matrix is the zero value.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Det()
	if !isFinite(det) || math.Abs(det) < 1e-300 {
		return Matrix{}, false
	}
	return Matrix{
		A: m.E / det,
		B: -m.B / det,
		C: (m.B*m.F - m.C*m.E) / det,
		D: -m.D / det,
		E: m.A / det,
		F: (m.C*m.D - m.A*m.F) / det,
	}, true
}

// Aff3 returns m in the layout golang.org/x/image/draw transformers take.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// MatrixFromAff3 is the inverse of [Matrix.Aff3].
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}

package regpoly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedArea returns the shoelace area; positive for counter-clockwise.
func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func TestVerticesFirstVertexOnRotation(t *testing.T) {
	p := MustFromCircumradius(Triangle, 1.0, WithCenter(0, 0), WithRotation(0))
	v := p.Vertices()
	require.Len(t, v, 3)
	assert.InDelta(t, 1.0, v[0].X, tol)
	assert.InDelta(t, 0.0, v[0].Y, tol)

	q := MustFromCircumradius(Square, 2, WithCenter(5, 5), WithRotation(math.Pi/2))
	assert.True(t, q.Vertices()[0].Approx(Pt(5, 7), tol), "got %v", q.Vertices()[0])
}

func TestVerticesGeometry(t *testing.T) {
	for n := 3; n <= 36; n++ {
		p := MustFromSideLength(n, 3, WithCenter(-2, 8), WithRotation(0.3))
		v := p.Vertices()
		m := p.SideMidpoints()

		require.Len(t, v, n)
		require.Len(t, m, n)

		for i := range v {
			next := v[(i+1)%n]
			assert.InDelta(t, p.Circumradius(), v[i].Distance(p.Center()), tol, "n=%d vertex %d", n, i)
			assert.InDelta(t, p.SideLength(), v[i].Distance(next), tol, "n=%d side %d", n, i)
			assert.InDelta(t, p.Inradius(), m[i].Distance(p.Center()), tol, "n=%d midpoint %d", n, i)
			assert.True(t, m[i].Approx(v[i].Midpoint(next), 0), "n=%d midpoint %d", n, i)
		}
		assert.Greater(t, signedArea(v), 0.0, "n=%d vertices must wind counter-clockwise", n)
		assert.InEpsilon(t, p.Area(), signedArea(v), tol, "n=%d", n)
	}
}

func TestSquareVertices(t *testing.T) {
	p := MustFromCircumradius(Square, 1)
	want := []Point{Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1)}
	for i, v := range p.Vertices() {
		assert.True(t, v.Approx(want[i], tol), "vertex %d = %v, want %v", i, v, want[i])
	}

	wantMid := []Point{Pt(0.5, 0.5), Pt(-0.5, 0.5), Pt(-0.5, -0.5), Pt(0.5, -0.5)}
	for i, m := range p.SideMidpoints() {
		assert.True(t, m.Approx(wantMid[i], tol), "midpoint %d = %v, want %v", i, m, wantMid[i])
	}
}

func TestEdges(t *testing.T) {
	p := MustFromInradius(Heptagon, 2)
	v := p.Vertices()
	e := p.Edges()
	require.Len(t, e, Heptagon)
	for i := range e {
		assert.Equal(t, v[i], e[i][0])
		assert.Equal(t, e[(i+1)%len(e)][0], e[i][1])
	}
}

func TestAngles(t *testing.T) {
	tests := []struct {
		n        int
		interior float64
	}{
		{Triangle, math.Pi / 3},
		{Square, math.Pi / 2},
		{Pentagon, 3 * math.Pi / 5},
		{Hexagon, 2 * math.Pi / 3},
		{Octagon, 3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(SideName(tt.n), func(t *testing.T) {
			p := MustFromCircumradius(tt.n, 1)
			assert.InDelta(t, tt.interior, p.InteriorAngle(), tol)
			assert.InDelta(t, 2*math.Pi-tt.interior, p.ExteriorAngle(), tol)
		})
	}

	for n := 3; n <= 100; n++ {
		p := MustFromCircumradius(n, 1)
		assert.InDelta(t, 2*math.Pi, p.InteriorAngle()+p.ExteriorAngle(), tol, "n=%d", n)
	}
}

func TestSagitta(t *testing.T) {
	for n := 3; n <= 100; n++ {
		for _, r := range []float64{1e-4, 1, 1e4} {
			p := MustFromInradius(n, r)
			assert.GreaterOrEqual(t, p.Sagitta(), 0.0, "n=%d r=%g", n, r)
			assert.Equal(t, p.Circumradius()-p.Inradius(), p.Sagitta())
		}
	}

	sq := MustFromSideLength(Square, 1)
	assert.InDelta(t, math.Sqrt2/2-0.5, sq.Sagitta(), tol)
}

func TestPerimeterAndArea(t *testing.T) {
	sq := MustFromSideLength(Square, 2)
	assert.InDelta(t, 8, sq.Perimeter(), tol)
	assert.InDelta(t, 4, sq.Area(), tol)

	hex := MustFromCircumradius(Hexagon, 1)
	assert.InDelta(t, 6, hex.Perimeter(), tol)
	assert.InDelta(t, 3*math.Sqrt(3)/2, hex.Area(), tol)

	// Area approaches πR² as n grows.
	many := MustFromCircumradius(10000, 1)
	assert.InDelta(t, math.Pi, many.Area(), 1e-6)
}

func TestBounds(t *testing.T) {
	p := MustFromCircumradius(Square, math.Sqrt2, WithRotation(math.Pi/4))
	b := p.Bounds()
	assert.InDelta(t, -1, b.MinX, tol)
	assert.InDelta(t, -1, b.MinY, tol)
	assert.InDelta(t, 1, b.MaxX, tol)
	assert.InDelta(t, 1, b.MaxY, tol)
	assert.InDelta(t, 2, b.Width(), tol)
	assert.InDelta(t, 2, b.Height(), tol)

	tri := MustFromCircumradius(Triangle, 2, WithCenter(10, 0))
	b = tri.Bounds()
	assert.InDelta(t, 12, b.MaxX, tol)
	assert.InDelta(t, 9, b.MinX, tol)
	assert.InDelta(t, math.Sqrt(3), b.MaxY, tol)
	assert.InDelta(t, -math.Sqrt(3), b.MinY, tol)
}

func TestBoundsAll(t *testing.T) {
	a := MustFromCircumradius(Square, 1)
	b := MustFromCircumradius(Square, 1, WithCenter(10, 10))
	r := BoundsAll(a, Polygon{}, b)
	assert.InDelta(t, -1, r.MinX, tol)
	assert.InDelta(t, -1, r.MinY, tol)
	assert.InDelta(t, 11, r.MaxX, tol)
	assert.InDelta(t, 11, r.MaxY, tol)

	assert.True(t, BoundsAll().IsEmpty())
}

func TestInvalidPolygonQueries(t *testing.T) {
	var p Polygon
	assert.Nil(t, p.Vertices())
	assert.Empty(t, p.SideMidpoints())
	assert.Empty(t, p.Edges())
	assert.True(t, p.Bounds().IsEmpty())
}

func TestUnitVertices(t *testing.T) {
	assert.Nil(t, UnitVertices(2))
	v := UnitVertices(Pentagon)
	require.Len(t, v, 5)
	for _, pt := range v {
		assert.InDelta(t, 1, pt.Distance(Pt(0, 0)), tol)
	}
}

func TestQueriesAreDeterministic(t *testing.T) {
	p := MustFromSideLength(Nonagon, 1.25, WithCenter(3, 3), WithRotation(1))
	assert.Equal(t, p.Vertices(), p.Vertices())
	assert.Equal(t, p.SideMidpoints(), p.SideMidpoints())
}

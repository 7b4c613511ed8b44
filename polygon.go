package regpoly

import (
	"fmt"
	"strconv"
)

// Common side counts.
const (
	Triangle     = 3
	Square       = 4
	Pentagon     = 5
	Hexagon      = 6
	Heptagon     = 7
	Octagon      = 8
	Nonagon      = 9
	Decagon      = 10
	Hendecagon   = 11
	Dodecagon    = 12
	Tridecagon   = 13
	Tetradecagon = 14
)

var sideNames = map[int]string{
	Triangle:     "triangle",
	Square:       "square",
	Pentagon:     "pentagon",
	Hexagon:      "hexagon",
	Heptagon:     "heptagon",
	Octagon:      "octagon",
	Nonagon:      "nonagon",
	Decagon:      "decagon",
	Hendecagon:   "hendecagon",
	Dodecagon:    "dodecagon",
	Tridecagon:   "tridecagon",
	Tetradecagon: "tetradecagon",
}

// SideName returns the conventional name for a polygon with n sides,
// or "<n>-gon" when there is none.
func SideName(n int) string {
	if name, ok := sideNames[n]; ok {
		return name
	}
	return strconv.Itoa(n) + "-gon"
}

// SidesByName is the inverse of [SideName] for the named side counts.
func SidesByName(name string) (int, bool) {
	for n, s := range sideNames {
		if s == name {
			return n, true
		}
	}
	return 0, false
}

// Polygon is a regular convex polygon: all sides have equal length and all
// interior angles are equal.
//
// A Polygon is an immutable value. It is created by [FromSideLength],
// [FromInradius] or [FromCircumradius], which populate side length, inradius
// and circumradius together so they always agree. Transforms such as
// [Polygon.Translate] return a new Polygon and leave the receiver unchanged,
// so values may be shared freely between goroutines.
//
// The zero Polygon is not valid; see [Polygon.IsValid].
type Polygon struct {
	sides        int
	center       Point
	rotation     float64
	circumradius float64
	inradius     float64
	sideLength   float64
}

// FromSideLength constructs a Polygon with n sides of the given length.
// Inradius and circumradius are derived from the side length.
func FromSideLength(n int, sideLength float64, opts ...Option) (Polygon, error) {
	o, err := prepare(n, "side length", sideLength, opts)
	if err != nil {
		return Polygon{}, err
	}
	return finish(Polygon{
		sides:        n,
		center:       o.center,
		rotation:     o.rotation,
		sideLength:   sideLength,
		inradius:     inradiusFromSideLength(n, sideLength),
		circumradius: circumradiusFromSideLength(n, sideLength),
	})
}

// FromInradius constructs a Polygon with n sides and the given inradius
// (apothem). Side length and circumradius are derived from the inradius.
func FromInradius(n int, inradius float64, opts ...Option) (Polygon, error) {
	o, err := prepare(n, "inradius", inradius, opts)
	if err != nil {
		return Polygon{}, err
	}
	return finish(Polygon{
		sides:        n,
		center:       o.center,
		rotation:     o.rotation,
		inradius:     inradius,
		sideLength:   sideLengthFromInradius(n, inradius),
		circumradius: circumradiusFromInradius(n, inradius),
	})
}

// FromCircumradius constructs a Polygon with n sides and the given
// circumradius. Side length and inradius are derived from the circumradius.
func FromCircumradius(n int, circumradius float64, opts ...Option) (Polygon, error) {
	o, err := prepare(n, "circumradius", circumradius, opts)
	if err != nil {
		return Polygon{}, err
	}
	return finish(fromCircumradius(n, circumradius, o.center, o.rotation))
}

// fromCircumradius builds the polygon without validating any measurement.
// Scale relies on it to produce the degenerate zero-size polygon.
func fromCircumradius(n int, circumradius float64, center Point, rotation float64) Polygon {
	return Polygon{
		sides:        n,
		center:       center,
		rotation:     rotation,
		circumradius: circumradius,
		sideLength:   sideLengthFromCircumradius(n, circumradius),
		inradius:     inradiusFromCircumradius(n, circumradius),
	}
}

// finish rejects a polygon whose derived measurements overflowed or
// underflowed.
func finish(p Polygon) (Polygon, error) {
	err := checkMeasurement("side length", p.sideLength)
	if err == nil {
		err = checkMeasurement("inradius", p.inradius)
	}
	if err == nil {
		err = checkMeasurement("circumradius", p.circumradius)
	}
	if err != nil {
		Logger().Debug("regpoly: rejected polygon",
			"sides", p.sides, "side_length", p.sideLength,
			"inradius", p.inradius, "circumradius", p.circumradius, "err", err)
		return Polygon{}, err
	}
	return p, nil
}

// MustFromSideLength is like [FromSideLength] but panics on error.
func MustFromSideLength(n int, sideLength float64, opts ...Option) Polygon {
	return must(FromSideLength(n, sideLength, opts...))
}

// MustFromInradius is like [FromInradius] but panics on error.
func MustFromInradius(n int, inradius float64, opts ...Option) Polygon {
	return must(FromInradius(n, inradius, opts...))
}

// MustFromCircumradius is like [FromCircumradius] but panics on error.
func MustFromCircumradius(n int, circumradius float64, opts ...Option) Polygon {
	return must(FromCircumradius(n, circumradius, opts...))
}

func must(p Polygon, err error) Polygon {
	if err != nil {
		panic(err)
	}
	return p
}

// prepare validates constructor input and resolves the options.
func prepare(n int, name string, v float64, opts []Option) (options, error) {
	err := checkConversion(n, name, v)
	var o options
	if err == nil {
		o, err = applyOptions(opts)
	}
	if err != nil {
		Logger().Debug("regpoly: rejected polygon",
			"sides", n, "from", name, "value", v, "err", err)
		return options{}, err
	}
	return o, nil
}

// Sides returns the number of sides.
func (p Polygon) Sides() int { return p.sides }

// Center returns the center of the polygon.
func (p Polygon) Center() Point { return p.center }

// CenterX returns the x coordinate of the center.
func (p Polygon) CenterX() float64 { return p.center.X }

// CenterY returns the y coordinate of the center.
func (p Polygon) CenterY() float64 { return p.center.Y }

// Rotation returns the angle, in radians, of the first vertex around the
// center. It is stored exactly as supplied and accumulated by Rotate; see
// [Polygon.NormalizedRotation] for a value in [0, 2π).
func (p Polygon) Rotation() float64 { return p.rotation }

// Circumradius returns the distance from the center to each vertex.
func (p Polygon) Circumradius() float64 { return p.circumradius }

// Inradius returns the distance from the center to the midpoint of each side.
func (p Polygon) Inradius() float64 { return p.inradius }

// SideLength returns the length of each side.
func (p Polygon) SideLength() float64 { return p.sideLength }

// IsValid reports whether p was produced by a constructor or transform.
func (p Polygon) IsValid() bool { return p.sides >= 3 }

// IsDegenerate reports whether p has collapsed to its center, which only
// happens through Scale(0).
func (p Polygon) IsDegenerate() bool { return p.circumradius == 0 }

// String implements fmt.Stringer.
func (p Polygon) String() string {
	if !p.IsValid() {
		return "regpoly.Polygon{invalid}"
	}
	return fmt.Sprintf("%s(center=%v, rotation=%g, circumradius=%g, inradius=%g, side=%g)",
		SideName(p.sides), p.center, p.rotation, p.circumradius, p.inradius, p.sideLength)
}

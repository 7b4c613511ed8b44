// Package regpoly computes the geometry of regular convex polygons.
//
// # Overview
//
// A regular polygon has n equal sides and n equal interior angles. It is
// fully determined by its side count plus any one of three measurements:
//
//   - side length: the length of each edge
//   - inradius (apothem): the distance from the center to the midpoint of
//     a side
//   - circumradius: the distance from the center to a vertex
//
// regpoly derives the other two measurements, generates vertex coordinates
// and answers auxiliary queries (interior and exterior angle, sagitta, side
// midpoints, perimeter, area, bounds).
//
// # Quick Start
//
//	import "github.com/gogpu/regpoly"
//
//	// Unit square centered at (10, 10)
//	sq, err := regpoly.FromSideLength(regpoly.Square, 1, regpoly.WithCenter(10, 10))
//	if err != nil {
//	    return err
//	}
//	for _, v := range sq.Vertices() {
//	    fmt.Println(v)
//	}
//
//	// Transforms return new values; sq is unchanged.
//	moved := sq.Translate(5, 0).Rotate(math.Pi / 4).Scale(0.5)
//
// # Immutability
//
// [Polygon] is a value type with unexported fields. Constructors populate
// every field at once and transforms return fresh values, so a Polygon can
// be shared between goroutines without synchronization.
//
// # Coordinate System
//
// Angles are in radians, 0 points along the positive x-axis and angles
// increase counter-clockwise (toward positive y). In image coordinates,
// where y grows downward, the same vertices appear clockwise on screen.
//
// # Configuration
//
// Polygons can be described declaratively with [Spec] and loaded from YAML
// with [ParseSpecs] or [LoadSpecs].
package regpoly

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

package regpoly

import "errors"

// ErrInvalidPolygon is returned when a side count below 3 is supplied.
var ErrInvalidPolygon = errors.New("regpoly: polygon needs at least 3 sides")

// ErrInvalidMeasurement is returned when a side length, inradius or
// circumradius is not a positive finite number, or when a center coordinate
// or rotation is not finite.
var ErrInvalidMeasurement = errors.New("regpoly: invalid measurement")

// ErrAmbiguousSpec is returned by [Spec.Build] when a descriptor sets no
// measurement, or more than one.
var ErrAmbiguousSpec = errors.New("regpoly: spec must set exactly one of side_length, inradius, circumradius")

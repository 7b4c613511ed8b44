package regpoly

import (
	"fmt"
	"math"
)

// The six conversions below relate the three measurements of a regular
// polygon with n sides through the half central angle θ = π/n. Every
// function rejects n < 3 with ErrInvalidPolygon. A measurement that is not
// positive and finite fails with ErrInvalidMeasurement, and so does a
// result that overflows to +Inf or underflows to 0.

// InradiusFromSideLength computes the inradius of a regular polygon with
// the given side length.
func InradiusFromSideLength(n int, sideLength float64) (float64, error) {
	if err := checkConversion(n, "side length", sideLength); err != nil {
		return 0, err
	}
	return derived("inradius", inradiusFromSideLength(n, sideLength))
}

// CircumradiusFromSideLength computes the circumradius of a regular polygon
// with the given side length.
func CircumradiusFromSideLength(n int, sideLength float64) (float64, error) {
	if err := checkConversion(n, "side length", sideLength); err != nil {
		return 0, err
	}
	return derived("circumradius", circumradiusFromSideLength(n, sideLength))
}

// SideLengthFromInradius computes the side length of a regular polygon with
// the given inradius.
func SideLengthFromInradius(n int, inradius float64) (float64, error) {
	if err := checkConversion(n, "inradius", inradius); err != nil {
		return 0, err
	}
	return derived("side length", sideLengthFromInradius(n, inradius))
}

// CircumradiusFromInradius computes the circumradius of a regular polygon
// with the given inradius.
func CircumradiusFromInradius(n int, inradius float64) (float64, error) {
	if err := checkConversion(n, "inradius", inradius); err != nil {
		return 0, err
	}
	return derived("circumradius", circumradiusFromInradius(n, inradius))
}

// SideLengthFromCircumradius computes the side length of a regular polygon
// with the given circumradius.
func SideLengthFromCircumradius(n int, circumradius float64) (float64, error) {
	if err := checkConversion(n, "circumradius", circumradius); err != nil {
		return 0, err
	}
	return derived("side length", sideLengthFromCircumradius(n, circumradius))
}

// InradiusFromCircumradius computes the inradius of a regular polygon with
// the given circumradius.
func InradiusFromCircumradius(n int, circumradius float64) (float64, error) {
	if err := checkConversion(n, "circumradius", circumradius); err != nil {
		return 0, err
	}
	return derived("inradius", inradiusFromCircumradius(n, circumradius))
}

func halfCentralAngle(n int) float64 {
	return math.Pi / float64(n)
}

func inradiusFromSideLength(n int, s float64) float64 {
	return 0.5 * s / math.Tan(halfCentralAngle(n))
}

func circumradiusFromSideLength(n int, s float64) float64 {
	return 0.5 * s / math.Sin(halfCentralAngle(n))
}

func sideLengthFromInradius(n int, r float64) float64 {
	return 2.0 * r * math.Tan(halfCentralAngle(n))
}

func circumradiusFromInradius(n int, r float64) float64 {
	return r / math.Cos(halfCentralAngle(n))
}

func sideLengthFromCircumradius(n int, r float64) float64 {
	return 2.0 * r * math.Sin(halfCentralAngle(n))
}

func inradiusFromCircumradius(n int, r float64) float64 {
	return r * math.Cos(halfCentralAngle(n))
}

func checkSides(n int) error {
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidPolygon, n)
	}
	return nil
}

func checkMeasurement(name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidMeasurement, name, v)
	}
	return nil
}

// derived validates a computed measurement.
func derived(name string, v float64) (float64, error) {
	if err := checkMeasurement(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkConversion(n int, name string, v float64) error {
	if err := checkSides(n); err != nil {
		return err
	}
	return checkMeasurement(name, v)
}

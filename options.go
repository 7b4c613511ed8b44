package regpoly

import "fmt"

// Option configures a Polygon during construction.
// Use functional options to place and orient the polygon; without any,
// the polygon is centered at the origin with its first vertex on the
// positive x-axis.
//
// Example:
//
//	// Hexagon centered at (100, 50), first vertex pointing up
//	p, err := regpoly.FromCircumradius(regpoly.Hexagon, 40,
//	    regpoly.WithCenter(100, 50),
//	    regpoly.WithRotation(math.Pi/2))
type Option func(*options)

// options holds optional configuration for Polygon creation.
type options struct {
	center   Point
	rotation float64
}

// defaultOptions returns the default construction options.
func defaultOptions() options {
	return options{
		center:   Point{X: 0, Y: 0},
		rotation: 0,
	}
}

// WithCenter sets the center of the polygon.
func WithCenter(x, y float64) Option {
	return func(o *options) {
		o.center = Point{X: x, Y: y}
	}
}

// WithCenterPoint sets the center of the polygon from a Point.
func WithCenterPoint(p Point) Option {
	return func(o *options) {
		o.center = p
	}
}

// WithRotation sets the angle, in radians, of the first vertex measured
// counter-clockwise from the positive x-axis around the center.
func WithRotation(angle float64) Option {
	return func(o *options) {
		o.rotation = angle
	}
}

// applyOptions folds opts over the defaults and validates the placement.
func applyOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.center.IsFinite() {
		return o, fmt.Errorf("%w: center must be finite, got %v", ErrInvalidMeasurement, o.center)
	}
	if !isFinite(o.rotation) {
		return o, fmt.Errorf("%w: rotation must be finite, got %g", ErrInvalidMeasurement, o.rotation)
	}
	return o, nil
}

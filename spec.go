package regpoly

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sides is a side count that decodes from YAML either as an integer or as
// one of the names returned by [SideName] ("triangle" … "tetradecagon").
type Sides int

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sides) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: sides must be a number or a name", value.Line)
	}
	text := strings.TrimSpace(value.Value)
	if n, err := strconv.Atoi(text); err == nil {
		*s = Sides(n)
		return nil
	}
	if n, ok := SidesByName(strings.ToLower(text)); ok {
		*s = Sides(n)
		return nil
	}
	return fmt.Errorf("line %d: unknown side count %q", value.Line, value.Value)
}

// MarshalYAML implements yaml.Marshaler. Named side counts are written by
// name.
func (s Sides) MarshalYAML() (any, error) {
	if name, ok := sideNames[int(s)]; ok {
		return name, nil
	}
	return int(s), nil
}

// Spec is a declarative description of one polygon, suitable for YAML
// configuration files:
//
//	- name: badge
//	  sides: hexagon
//	  circumradius: 40
//	  center: [100, 50]
//	  rotation_deg: 90
//
// Exactly one of SideLength, Inradius and Circumradius must be set.
// Rotation is in radians; RotationDeg is an alternative in degrees and the
// two are mutually exclusive.
type Spec struct {
	Name         string    `yaml:"name,omitempty"`
	Sides        Sides     `yaml:"sides"`
	SideLength   *float64  `yaml:"side_length,omitempty"`
	Inradius     *float64  `yaml:"inradius,omitempty"`
	Circumradius *float64  `yaml:"circumradius,omitempty"`
	Center       []float64 `yaml:"center,flow,omitempty"`
	Rotation     *float64  `yaml:"rotation,omitempty"`
	RotationDeg  *float64  `yaml:"rotation_deg,omitempty"`
}

// Build constructs the Polygon described by s.
func (s Spec) Build() (Polygon, error) {
	opts, err := s.options()
	if err != nil {
		return Polygon{}, s.wrap(err)
	}

	var (
		p   Polygon
		set int
	)
	n := int(s.Sides)
	if s.SideLength != nil {
		set++
		p, err = FromSideLength(n, *s.SideLength, opts...)
	}
	if s.Inradius != nil {
		set++
		p, err = FromInradius(n, *s.Inradius, opts...)
	}
	if s.Circumradius != nil {
		set++
		p, err = FromCircumradius(n, *s.Circumradius, opts...)
	}
	if set != 1 {
		return Polygon{}, s.wrap(fmt.Errorf("%w (got %d)", ErrAmbiguousSpec, set))
	}
	if err != nil {
		return Polygon{}, s.wrap(err)
	}
	return p, nil
}

func (s Spec) options() ([]Option, error) {
	var opts []Option
	switch len(s.Center) {
	case 0:
	case 2:
		opts = append(opts, WithCenter(s.Center[0], s.Center[1]))
	default:
		return nil, fmt.Errorf("%w: center needs 2 coordinates, got %d", ErrInvalidMeasurement, len(s.Center))
	}
	switch {
	case s.Rotation != nil && s.RotationDeg != nil:
		return nil, fmt.Errorf("%w: rotation and rotation_deg are mutually exclusive", ErrInvalidMeasurement)
	case s.Rotation != nil:
		opts = append(opts, WithRotation(*s.Rotation))
	case s.RotationDeg != nil:
		opts = append(opts, WithRotation(*s.RotationDeg*math.Pi/180))
	}
	return opts, nil
}

func (s Spec) wrap(err error) error {
	if s.Name == "" {
		return err
	}
	return fmt.Errorf("%s: %w", s.Name, err)
}

// SpecOf describes p by its circumradius, center and rotation. For a valid,
// non-degenerate polygon, building the result yields the same side count,
// center, rotation and circumradius; the other two measurements are
// re-derived from the circumradius and may differ from p's in the last bits
// when p was built from a side length or inradius. The zero Polygon and
// polygons collapsed by Scale(0) produce specs that do not build.
func SpecOf(p Polygon) Spec {
	r := p.circumradius
	rot := p.rotation
	s := Spec{
		Sides:        Sides(p.sides),
		Circumradius: &r,
	}
	if p.center != (Point{}) {
		s.Center = []float64{p.center.X, p.center.Y}
	}
	if rot != 0 {
		s.Rotation = &rot
	}
	return s
}

// ParseSpecs decodes a YAML document holding either a single spec mapping
// or a sequence of specs. An empty document yields no specs.
func ParseSpecs(data []byte) ([]Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		Logger().Warn("regpoly: failed to parse specs", "err", err)
		return nil, fmt.Errorf("regpoly: parse specs: %w", err)
	}
	return decodeSpecs(&doc)
}

// LoadSpecs decodes every YAML document in r (documents separated by
// "---") and returns the specs in stream order.
func LoadSpecs(r io.Reader) ([]Spec, error) {
	dec := yaml.NewDecoder(r)
	var specs []Spec
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return specs, nil
		}
		if err != nil {
			Logger().Warn("regpoly: failed to read specs", "err", err)
			return nil, fmt.Errorf("regpoly: load specs: %w", err)
		}
		s, err := decodeSpecs(&doc)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s...)
	}
}

func decodeSpecs(doc *yaml.Node) ([]Spec, error) {
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}

	var (
		specs []Spec
		err   error
	)
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.SequenceNode:
		err = node.Decode(&specs)
	case yaml.MappingNode:
		var s Spec
		err = node.Decode(&s)
		specs = []Spec{s}
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
		err = fmt.Errorf("line %d: expected a mapping or a sequence", node.Line)
	default:
		err = fmt.Errorf("line %d: expected a mapping or a sequence", node.Line)
	}
	if err != nil {
		Logger().Warn("regpoly: failed to decode specs", "err", err)
		return nil, fmt.Errorf("regpoly: decode specs: %w", err)
	}
	return specs, nil
}

// BuildAll builds every spec, stopping at the first failure.
func BuildAll(specs []Spec) ([]Polygon, error) {
	polys := make([]Polygon, 0, len(specs))
	for i, s := range specs {
		p, err := s.Build()
		if err != nil {
			Logger().Warn("regpoly: spec rejected", "index", i, "name", s.Name, "err", err)
			return nil, fmt.Errorf("spec %d: %w", i, err)
		}
		polys = append(polys, p)
	}
	return polys, nil
}

// MarshalSpecs encodes polys as a YAML sequence of specs. It refuses
// invalid and degenerate polygons, whose specs could not be built again.
func MarshalSpecs(polys ...Polygon) ([]byte, error) {
	specs := make([]Spec, len(polys))
	for i, p := range polys {
		switch {
		case !p.IsValid():
			return nil, fmt.Errorf("regpoly: marshal specs: polygon %d: %w", i, ErrInvalidPolygon)
		case p.IsDegenerate():
			return nil, fmt.Errorf("regpoly: marshal specs: polygon %d: %w: zero circumradius", i, ErrInvalidMeasurement)
		}
		specs[i] = SpecOf(p)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(specs); err != nil {
		return nil, fmt.Errorf("regpoly: marshal specs: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("regpoly: marshal specs: %w", err)
	}
	return buf.Bytes(), nil
}

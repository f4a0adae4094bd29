package section

import (
	"fmt"
	"math"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
)

// Shaft represents a circular reinforced-concrete column or drilled shaft
// with a single ring of uniformly spaced longitudinal bars. The section is
// defined in a local coordinate system with the origin at the circle center;
// bending is about the x-axis and the extreme compression fiber sits at
// y = +radius.
type Shaft struct {
	// Inputs (in, ksi)
	Diameter float64        `json:"diameter"`
	Cover    float64        `json:"cover"` // cover to the bar surface
	BarCount int            `json:"bar_count"`
	BarSize  int            `json:"bar_size"` // ASTM designation, #3..#11
	Fc       float64        `json:"fc"`
	Fy       float64        `json:"fy"`
	Ties     aashto.TieType `json:"-"`

	// Derived properties, populated by New
	Radius          float64      // in
	Bar             aashto.Rebar // bar area and diameter from the ASTM table
	YieldStrain     float64      // fy / Es
	Ec              float64      // concrete modulus (ksi)
	GrossArea       float64      // full circular area (in²)
	SteelArea       float64      // total longitudinal steel (in²)
	NetConcreteArea float64      // gross area less steel (in²)
}

// New builds a validated shaft and derives its material and area properties.
// It fails before any capacity computation on invalid input, an unsupported
// bar size, or a bar ring that would fall outside the section.
func New(diameter, cover float64, barCount, barSize int, fc, fy float64, ties aashto.TieType) (*Shaft, error) {
	s := &Shaft{
		Diameter: diameter,
		Cover:    cover,
		BarCount: barCount,
		BarSize:  barSize,
		Fc:       fc,
		Fy:       fy,
		Ties:     ties,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bar, err := aashto.BarForSize(barSize)
	if err != nil {
		return nil, err
	}
	s.Bar = bar
	s.Radius = diameter / 2

	if cover+bar.Diameter/2 >= s.Radius {
		return nil, &ValidationError{msg: fmt.Sprintf(
			"degenerate geometry: cover %.2f in plus half a #%d bar places the ring outside the %.2f in radius",
			cover, barSize, s.Radius)}
	}

	s.YieldStrain = fy / aashto.Es
	s.Ec = aashto.ConcreteModulus(fc)
	s.GrossArea = math.Pi * diameter * diameter / 4
	s.SteelArea = float64(barCount) * bar.Area
	s.NetConcreteArea = s.GrossArea - s.SteelArea

	return s, nil
}

// Validate checks the raw input fields.
func (s *Shaft) Validate() error {
	if s.Diameter <= 0 {
		return &ValidationError{msg: "diameter must be positive"}
	}
	if s.Cover < 0 {
		return &ValidationError{msg: "cover must not be negative"}
	}
	if s.BarCount < 1 {
		return &ValidationError{msg: "shaft must have at least one bar"}
	}
	if s.Fc <= 0 {
		return &ValidationError{msg: "f'c must be positive"}
	}
	if s.Fy <= 0 {
		return &ValidationError{msg: "fy must be positive"}
	}
	return nil
}

// ValidationError represents a shaft definition error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

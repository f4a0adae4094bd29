// Package curve computes the axial-load/bending-moment (P-M) interaction
// capacity of a circular reinforced-concrete section by strain compatibility
// with a Whitney rectangular stress block, following AASHTO LRFD design
// philosophy.
//
// Compression forces and strains are negative throughout; presentation
// layers negate for display.
package curve

import "math"

// Sweep range for the trial neutral-axis depth (in). Depths below CMin are
// too tension-dominated for the model's intended compression-side accuracy,
// so no tension-controlled branch is attempted below it. The range is a
// fixed constant sized for typical shaft diameters; very large sections
// (over roughly 120 in) may not reach full compression resolution.
const (
	CMin  = 2.0
	CMax  = 100.0
	CStep = 0.1
)

// Point is one interaction-curve entry: nominal and factored axial load and
// moment at a trial neutral-axis depth.
type Point struct {
	C  float64 // neutral-axis depth from the extreme compression fiber (in)
	Pn float64 // nominal axial load (kip)
	Mn float64 // nominal moment (kip-in)
	Pr float64 // factored axial load (kip)
	Mr float64 // factored moment (kip-in)
}

// Curve is an interaction curve ordered by increasing neutral-axis depth.
type Curve []Point

// Steps returns the number of points one sweep produces.
func Steps() int {
	return int(math.Round((CMax - CMin) / CStep))
}

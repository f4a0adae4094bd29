package curve

import (
	"math"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
	"github.com/OpenSourcePT/PMCurve/internal/section"
)

// Evaluate computes one capacity point for the trial neutral-axis depth c.
// bars must be the shaft's layout; it is passed in so a sweep lays the bars
// out once. maxPn is the precomputed factored axial ceiling. Requires c > 0.
func Evaluate(s *section.Shaft, bars []section.BarPosition, maxPn, c float64) Point {
	var (
		steelForce  float64
		steelMoment float64
		deducted    float64
		maxStrain   = math.Inf(-1)
	)

	for _, b := range bars {
		// Depth of the bar centroid from the extreme compression fiber.
		// The linear strain profile pivots about depth c where strain = 0.
		depth := s.Radius - b.Y

		var strain float64
		if depth <= c {
			strain = aashto.EpsilonCrush * (c - depth) / c
		} else {
			strain = -aashto.EpsilonCrush * (depth - c) / c
		}
		if strain > maxStrain {
			maxStrain = strain
		}

		force := s.SteelStress(strain) * s.Bar.Area
		steelForce += force
		steelMoment += force * b.Y

		// The full bar area leaves the concrete compression zone as soon as
		// the bar centroid falls inside the stress-block depth. Not
		// prorated; slightly off near the boundary, accepted for
		// simplicity.
		if depth < 0.85*c {
			deducted += s.Bar.Area
		}
	}

	theta := s.CompressionZoneAngle(c)
	compressionArea, compressionCentroid := s.CompressionZone(theta)
	concreteForce := -(compressionArea - deducted) * 0.85 * s.Fc
	concreteMoment := concreteForce * compressionCentroid

	pn := concreteForce + steelForce
	mn := concreteMoment + steelMoment

	phi := aashto.Phi(maxStrain)
	pr := pn * phi
	if math.Abs(pr) > maxPn {
		pr = -maxPn
	}
	mr := mn * phi

	return Point{C: c, Pn: pn, Mn: mn, Pr: pr, Mr: mr}
}

// MaxAxial returns the ceiling on the shaft's factored axial compressive
// resistance (kip), independent of the neutral-axis depth.
func MaxAxial(s *section.Shaft) float64 {
	return aashto.MaxAxialResistance(s.NetConcreteArea, s.Fc, s.SteelArea, s.Fy, s.Ties)
}

package section

import "math"

// BarPosition is the centroid coordinate of one longitudinal bar.
type BarPosition struct {
	X float64 // in
	Y float64 // in
}

// RingRadius returns the radius of the circle the bar centroids sit on.
func (s *Shaft) RingRadius() float64 {
	return s.Radius - s.Cover - s.Bar.Diameter/2
}

// BarLayout returns the bar centroid coordinates, uniformly spaced by
// 360°/n starting at angle zero. Slice order is angular order.
func (s *Shaft) BarLayout() []BarPosition {
	step := 2 * math.Pi / float64(s.BarCount)
	r := s.RingRadius()

	bars := make([]BarPosition, s.BarCount)
	for i := range bars {
		theta := float64(i) * step
		bars[i] = BarPosition{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	return bars
}

// CompressionZoneAngle returns the half-angle θ subtended by the Whitney
// stress block for a trial neutral-axis depth c. The block depth 0.85·c is
// measured from the extreme compression fiber and clipped to the circular
// boundary; past c = D/0.85 the block covers the full circle.
func (s *Shaft) CompressionZoneAngle(c float64) float64 {
	if c > s.Diameter/0.85 {
		return math.Pi
	}
	ratio := (s.Radius - 0.85*c) / s.Radius
	// Rounding can push the ratio a hair past -1 right at c = D/0.85.
	if ratio < -1 {
		ratio = -1
	}
	return math.Acos(ratio)
}

// CompressionZone returns the area of the compression zone and the distance
// of its centroid from the circle center, from the circular-segment formulas
// parameterized by the half-angle θ.
func (s *Shaft) CompressionZone(theta float64) (area, centroid float64) {
	if theta < 2*math.Pi {
		area = (s.Radius * s.Radius / 2) * (2*theta - math.Sin(2*theta))
	} else {
		area = s.GrossArea
	}
	centroid = 4 * s.Radius * math.Pow(math.Sin(theta), 3) / (3 * (2*theta - math.Sin(2*theta)))
	return area, centroid
}

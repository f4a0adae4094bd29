package section

import (
	"math"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
)

// SteelStress returns the bar stress (ksi) for a strain under the
// elastic-perfectly-plastic law, preserving the sign of the strain:
// sign(ε)·min(|ε|·Es, fy).
func (s *Shaft) SteelStress(strain float64) float64 {
	stress := math.Min(math.Abs(strain)*aashto.Es, s.Fy)
	if strain < 0 {
		return -stress
	}
	return stress
}

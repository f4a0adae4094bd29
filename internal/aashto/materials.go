package aashto

import (
	"fmt"
	"math"
	"strings"
)

// AASHTO LRFD (9th Edition) Design Constants

const (
	// Modulus of elasticity of reinforcing steel (ksi)
	Es = 29000.0

	// EpsilonCrush is the concrete crushing strain at the extreme
	// compression fiber. Compression strains are negative throughout
	// the engine.
	EpsilonCrush = -0.003

	// Resistance factor limits and the tensile-strain breakpoints between
	// compression-controlled and tension-controlled behavior
	PhiCompression    = 0.75
	PhiTension        = 0.90
	StrainCompression = 0.002
	StrainTension     = 0.005

	// Transverse-reinforcement coefficients for the factored axial ceiling,
	// reflecting the confinement effectiveness of each detailing type
	SpiralCoefficient = 0.85
	HoopCoefficient   = 0.80

	// Unit weight of normal-weight concrete (kcf) used in the concrete
	// modulus correlation
	GammaConcrete = 0.135
)

// TieType identifies the transverse reinforcement detailing of a column or
// drilled shaft.
type TieType int

const (
	Spiral TieType = iota
	Hoop
)

func (t TieType) String() string {
	if t == Spiral {
		return "Spirals"
	}
	return "Hoops"
}

// ParseTieType converts a user-facing transverse reinforcement name into a
// TieType. An empty string defaults to spirals.
func ParseTieType(name string) (TieType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "spiral", "spirals":
		return Spiral, nil
	case "hoop", "hoops", "tie", "ties":
		return Hoop, nil
	}
	return Spiral, fmt.Errorf("aashto: unknown transverse reinforcement type %q", name)
}

// TransverseCoefficient returns the confinement-effectiveness coefficient
// used in the maximum factored axial resistance.
func TransverseCoefficient(t TieType) float64 {
	if t == Spiral {
		return SpiralCoefficient
	}
	return HoopCoefficient
}

// Phi returns the resistance factor for the most tensile bar strain in the
// section: 0.75 for compression-controlled behavior, 0.90 for
// tension-controlled, interpolated linearly in between.
func Phi(strain float64) float64 {
	switch {
	case strain <= StrainCompression:
		return PhiCompression
	case strain < StrainTension:
		return PhiCompression + (PhiTension-PhiCompression)*
			(strain-StrainCompression)/(StrainTension-StrainCompression)
	default:
		return PhiTension
	}
}

// MaxAxialResistance returns the code ceiling on factored axial compressive
// resistance (kip), independent of moment:
//
//	0.75 · k · (Ac·0.85·f'c + As·fy)
//
// where k is the transverse-reinforcement coefficient.
func MaxAxialResistance(netConcreteArea, fc, steelArea, fy float64, tie TieType) float64 {
	return 0.75 * TransverseCoefficient(tie) * (netConcreteArea*0.85*fc + steelArea*fy)
}

// ConcreteModulus returns the modulus of elasticity of normal-weight concrete
// (ksi) from the unit-weight correlation Ec = 120000·γ²·(f'c)^0.33.
func ConcreteModulus(fc float64) float64 {
	return 120000 * GammaConcrete * GammaConcrete * math.Pow(fc, 0.33)
}

package aashto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
)

func TestPhiLimits(t *testing.T) {
	assert.Equal(t, 0.75, aashto.Phi(-0.003)) // fully compressive section
	assert.Equal(t, 0.75, aashto.Phi(0.002))
	assert.InDelta(t, 0.825, aashto.Phi(0.0035), 1e-12) // midpoint of the transition
	assert.Equal(t, 0.90, aashto.Phi(0.005))
	assert.Equal(t, 0.90, aashto.Phi(0.02))
}

func TestPhiMonotonicAndBounded(t *testing.T) {
	prev := aashto.Phi(-0.01)
	for strain := -0.01; strain <= 0.01; strain += 0.0001 {
		phi := aashto.Phi(strain)
		assert.GreaterOrEqual(t, phi, 0.75)
		assert.LessOrEqual(t, phi, 0.90)
		assert.GreaterOrEqual(t, phi, prev, "phi must not decrease with strain %f", strain)
		prev = phi
	}
}

func TestTransverseCoefficient(t *testing.T) {
	assert.Equal(t, 0.85, aashto.TransverseCoefficient(aashto.Spiral))
	assert.Equal(t, 0.80, aashto.TransverseCoefficient(aashto.Hoop))
}

func TestParseTieType(t *testing.T) {
	for _, name := range []string{"", "spiral", "Spirals", "SPIRAL"} {
		ties, err := aashto.ParseTieType(name)
		require.NoError(t, err)
		assert.Equal(t, aashto.Spiral, ties)
	}
	for _, name := range []string{"hoop", "Hoops", "ties"} {
		ties, err := aashto.ParseTieType(name)
		require.NoError(t, err)
		assert.Equal(t, aashto.Hoop, ties)
	}
	_, err := aashto.ParseTieType("stirrups")
	assert.Error(t, err)
}

func TestMaxAxialResistance(t *testing.T) {
	// 0.75·k·(Ac·0.85·f'c + As·fy) for both detailing types
	ac, fc, as, fy := 1000.0, 4.0, 9.48, 60.0
	spiral := aashto.MaxAxialResistance(ac, fc, as, fy, aashto.Spiral)
	hoop := aashto.MaxAxialResistance(ac, fc, as, fy, aashto.Hoop)
	assert.InDelta(t, 0.75*0.85*(ac*0.85*fc+as*fy), spiral, 1e-9)
	assert.InDelta(t, 0.75*0.80*(ac*0.85*fc+as*fy), hoop, 1e-9)
	assert.Greater(t, spiral, hoop)
}

func TestBarForSize(t *testing.T) {
	bar, err := aashto.BarForSize(8)
	require.NoError(t, err)
	assert.Equal(t, 0.79, bar.Area)
	assert.Equal(t, 1.000, bar.Diameter)

	for _, size := range aashto.BarSizes() {
		_, err := aashto.BarForSize(size)
		assert.NoError(t, err)
	}

	for _, size := range []int{0, 2, 12, -3} {
		_, err := aashto.BarForSize(size)
		assert.True(t, errors.Is(err, aashto.ErrUnsupportedBarSize), "size %d", size)
	}
}

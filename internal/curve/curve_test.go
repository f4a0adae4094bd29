package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
	"github.com/OpenSourcePT/PMCurve/internal/curve"
	"github.com/OpenSourcePT/PMCurve/internal/section"
)

// 36 in shaft, 4 in cover, 12 #8 bars, f'c = 4 ksi, fy = 60 ksi, spirals.
func newTestShaft(t *testing.T) *section.Shaft {
	t.Helper()
	s, err := section.New(36, 4, 12, 8, 4, 60, aashto.Spiral)
	require.NoError(t, err)
	return s
}

func generate(t *testing.T, s *section.Shaft) curve.Curve {
	t.Helper()
	crv, err := curve.Generate(zap.NewNop(), s)
	require.NoError(t, err)
	return crv
}

func TestGenerateSweep(t *testing.T) {
	crv := generate(t, newTestShaft(t))

	// [2, 100) at 0.1 steps
	require.Len(t, crv, 980)
	require.Len(t, crv, curve.Steps())
	assert.InDelta(t, 2.0, crv[0].C, 1e-12)
	assert.InDelta(t, 99.9, crv[len(crv)-1].C, 1e-9)

	for i := 1; i < len(crv); i++ {
		assert.Greater(t, crv[i].C, crv[i-1].C, "point %d", i)
	}
}

func TestFactoredAxialCap(t *testing.T) {
	s := newTestShaft(t)
	crv := generate(t, s)
	maxPn := curve.MaxAxial(s)

	for _, p := range crv {
		assert.LessOrEqual(t, math.Abs(p.Pr), maxPn+1e-9, "c=%.1f", p.C)
	}

	// Deep-compression points must actually hit the cap, at the fixed sign.
	last := crv[len(crv)-1]
	assert.Equal(t, -maxPn, last.Pr)
	// The nominal load is not capped.
	assert.Greater(t, math.Abs(last.Pn), maxPn)
}

func TestMaxAxialScenario(t *testing.T) {
	s := newTestShaft(t)

	grossArea := math.Pi * 36 * 36 / 4
	steelArea := 12 * 0.79
	expected := 0.75 * 0.85 * ((grossArea-steelArea)*0.85*4 + steelArea*60)

	assert.InDelta(t, expected, curve.MaxAxial(s), 1e-9)
}

func TestPureCompressionAsymptote(t *testing.T) {
	// With fy = 40 ksi every bar is past yield at the deepest sweep point,
	// so the nominal load matches the closed-form pure-compression capacity
	// exactly: 0.85·f'c·(Ag − As) + fy·As.
	s, err := section.New(36, 4, 12, 8, 4, 40, aashto.Spiral)
	require.NoError(t, err)
	crv := generate(t, s)
	last := crv[len(crv)-1]

	expected := -(0.85*4*(s.GrossArea-s.SteelArea) + 40*s.SteelArea)
	assert.InDelta(t, expected, last.Pn, 1e-6)
	// Symmetric bar forces about the bending axis leave no net moment.
	assert.InDelta(t, 0, last.Mn, 1e-6)

	// At fy = 60 the deepest bars are just shy of yield; the capacity still
	// approaches the closed form within a small tolerance.
	s60 := newTestShaft(t)
	last60 := generate(t, s60)[len(crv)-1]
	expected60 := -(0.85*4*(s60.GrossArea-s60.SteelArea) + 60*s60.SteelArea)
	assert.InEpsilon(t, expected60, last60.Pn, 1e-3)
}

func TestTensionControlledFactoring(t *testing.T) {
	crv := generate(t, newTestShaft(t))
	first := crv[0]

	// At c = 2 the extreme bar strain is far past 0.005, so φ = 0.90.
	assert.InDelta(t, 0.90*first.Pn, first.Pr, 1e-9)
	assert.InDelta(t, 0.90*first.Mn, first.Mr, 1e-9)
}

func TestDeterminism(t *testing.T) {
	s := newTestShaft(t)
	first := generate(t, s)
	second := generate(t, s)
	require.Equal(t, first, second)
}

func TestEvaluateBoundaryContinuity(t *testing.T) {
	// Around c = D/0.85 the compression zone switches to the full-circle
	// case; the computed point must not jump across the boundary.
	s := newTestShaft(t)
	bars := s.BarLayout()
	maxPn := curve.MaxAxial(s)
	boundary := s.Diameter / 0.85

	below := curve.Evaluate(s, bars, maxPn, boundary-1e-9)
	above := curve.Evaluate(s, bars, maxPn, boundary+1e-9)

	assert.InDelta(t, below.Pn, above.Pn, 1e-3)
	assert.InDelta(t, below.Mn, above.Mn, 1e-3)
}

func TestGenerateRejectsInvalidShaft(t *testing.T) {
	s := newTestShaft(t)
	s.Diameter = -1
	_, err := curve.Generate(zap.NewNop(), s)
	assert.Error(t, err)
}

func TestCompressionNegativeConvention(t *testing.T) {
	crv := generate(t, newTestShaft(t))

	// Deep neutral axis: the section is compression dominated.
	assert.Negative(t, crv[len(crv)-1].Pn)
	// Shallow neutral axis: tensile bar forces dominate the small
	// compression zone.
	assert.Positive(t, crv[0].Pn)
}

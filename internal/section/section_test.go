package section_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
	"github.com/OpenSourcePT/PMCurve/internal/section"
)

func newTestShaft(t *testing.T) *section.Shaft {
	t.Helper()
	s, err := section.New(36, 4, 12, 8, 4, 60, aashto.Spiral)
	require.NoError(t, err)
	return s
}

func TestNewDerivedProperties(t *testing.T) {
	s := newTestShaft(t)

	assert.Equal(t, 18.0, s.Radius)
	assert.InDelta(t, math.Pi*36*36/4, s.GrossArea, 1e-9)
	assert.InDelta(t, 12*0.79, s.SteelArea, 1e-9)
	assert.InDelta(t, s.GrossArea-s.SteelArea, s.NetConcreteArea, 1e-9)
	assert.InDelta(t, 60.0/29000.0, s.YieldStrain, 1e-12)
	assert.InDelta(t, 13.5, s.RingRadius(), 1e-12) // 18 - 4 - 0.5
	assert.InDelta(t, 120000*0.135*0.135*math.Pow(4, 0.33), s.Ec, 1e-9)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		diameter float64
		cover    float64
		bars     int
		size     int
		fc, fy   float64
	}{
		{"zero diameter", 0, 4, 12, 8, 4, 60},
		{"negative diameter", -36, 4, 12, 8, 4, 60},
		{"negative cover", 36, -1, 12, 8, 4, 60},
		{"zero bars", 36, 4, 0, 8, 4, 60},
		{"zero fc", 36, 4, 12, 8, 0, 60},
		{"zero fy", 36, 4, 12, 8, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := section.New(tc.diameter, tc.cover, tc.bars, tc.size, tc.fc, tc.fy, aashto.Spiral)
			require.Error(t, err)
			var verr *section.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestNewRejectsUnsupportedBarSize(t *testing.T) {
	_, err := section.New(36, 4, 12, 14, 4, 60, aashto.Spiral)
	assert.True(t, errors.Is(err, aashto.ErrUnsupportedBarSize))
}

func TestNewRejectsDegenerateGeometry(t *testing.T) {
	// Cover plus half a bar reaches past the section radius.
	_, err := section.New(10, 5, 8, 8, 4, 60, aashto.Spiral)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate geometry")
}

func TestBarLayoutPlacement(t *testing.T) {
	s := newTestShaft(t)
	bars := s.BarLayout()
	require.Len(t, bars, 12)

	// First bar sits at angle zero on the ring.
	assert.InDelta(t, s.RingRadius(), bars[0].X, 1e-12)
	assert.InDelta(t, 0, bars[0].Y, 1e-12)

	// Every bar sits on the ring.
	for i, b := range bars {
		assert.InDelta(t, s.RingRadius(), math.Hypot(b.X, b.Y), 1e-9, "bar %d", i)
	}
}

func TestBarLayoutCentroidAtOrigin(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 12, 16} {
		s, err := section.New(36, 4, n, 8, 4, 60, aashto.Spiral)
		require.NoError(t, err)

		var sumX, sumY float64
		for _, b := range s.BarLayout() {
			sumX += b.X
			sumY += b.Y
		}
		assert.InDelta(t, 0, sumX, 1e-9, "n=%d", n)
		assert.InDelta(t, 0, sumY, 1e-9, "n=%d", n)
	}
}

func TestCompressionZoneAngle(t *testing.T) {
	s := newTestShaft(t)

	// Shallow block: arccos branch
	theta := s.CompressionZoneAngle(2)
	assert.InDelta(t, math.Acos((18-1.7)/18), theta, 1e-12)

	// Exactly at c = D/0.85 the arccos branch reaches π...
	boundary := s.Diameter / 0.85
	assert.InDelta(t, math.Pi, s.CompressionZoneAngle(boundary), 1e-9)
	// ...and the full-circle branch past it agrees.
	assert.InDelta(t, math.Pi, s.CompressionZoneAngle(boundary+1), 1e-12)
}

func TestCompressionZoneFullCircleContinuity(t *testing.T) {
	s := newTestShaft(t)

	// At θ = π the segment formula degenerates to the full circle with its
	// centroid at the center, matching the full-area branch.
	area, centroid := s.CompressionZone(math.Pi)
	assert.InDelta(t, s.GrossArea, area, 1e-9)
	assert.InDelta(t, 0, centroid, 1e-9)

	areaFull, centroidFull := s.CompressionZone(2 * math.Pi)
	assert.InDelta(t, s.GrossArea, areaFull, 1e-9)
	assert.InDelta(t, 0, centroidFull, 1e-9)
}

func TestCompressionZoneHalfSection(t *testing.T) {
	s := newTestShaft(t)

	// θ = π/2 is the half circle; centroid at 4r/3π from the center.
	area, centroid := s.CompressionZone(math.Pi / 2)
	assert.InDelta(t, s.GrossArea/2, area, 1e-9)
	assert.InDelta(t, 4*s.Radius/(3*math.Pi), centroid, 1e-9)
}

func TestSteelStress(t *testing.T) {
	s := newTestShaft(t)

	assert.InDelta(t, 29.0, s.SteelStress(0.001), 1e-9) // elastic
	assert.InDelta(t, -29.0, s.SteelStress(-0.001), 1e-9)
	assert.InDelta(t, 60.0, s.SteelStress(s.YieldStrain), 1e-9) // at yield
	assert.InDelta(t, 60.0, s.SteelStress(0.01), 1e-9)          // plastic plateau
	assert.InDelta(t, -60.0, s.SteelStress(-0.01), 1e-9)
	assert.Equal(t, 0.0, s.SteelStress(0))
}

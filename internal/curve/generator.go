package curve

import (
	"github.com/OpenSourcePT/PMCurve/internal/section"
	"go.uber.org/zap"
)

// Generate sweeps the trial neutral-axis depth over [CMin, CMax) in CStep
// increments and returns the interaction curve in sweep order. The sweep is
// sequential and deterministic; every point depends only on the shaft and
// its own depth.
func Generate(logger *zap.Logger, s *section.Shaft) (Curve, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	bars := s.BarLayout()
	maxPn := MaxAxial(s)

	n := Steps()
	points := make(Curve, 0, n)
	for i := 0; i < n; i++ {
		c := CMin + CStep*float64(i)
		points = append(points, Evaluate(s, bars, maxPn, c))
	}

	logger.Debug("interaction curve generated",
		zap.String("op", "curve.Generate"),
		zap.Int("points", len(points)),
		zap.Float64("maxAxialKip", maxPn),
	)

	return points, nil
}

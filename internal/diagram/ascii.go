package diagram

import (
	"fmt"
	"strings"

	"github.com/OpenSourcePT/PMCurve/internal/curve"
	"github.com/OpenSourcePT/PMCurve/internal/section"
	"github.com/OpenSourcePT/PMCurve/internal/units"
	"github.com/guptarohit/asciigraph"
)

// PlotAxialSweep renders the nominal and factored axial-load traces across
// the neutral-axis sweep as a console chart (kip, compression positive).
func PlotAxialSweep(crv curve.Curve) string {
	nominal := make([]float64, len(crv))
	factored := make([]float64, len(crv))
	for i, p := range crv {
		nominal[i] = -p.Pn / units.Kip
		factored[i] = -p.Pr / units.Kip
	}

	return asciigraph.PlotMany([][]float64{nominal, factored},
		asciigraph.Height(18),
		asciigraph.Width(72),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("Pn", "Pr"),
		asciigraph.Caption("Axial capacity (kip) across neutral-axis sweep"),
	)
}

// PlotMomentSweep renders the nominal and factored moment traces across the
// neutral-axis sweep (kip-ft).
func PlotMomentSweep(crv curve.Curve) string {
	nominal := make([]float64, len(crv))
	factored := make([]float64, len(crv))
	for i, p := range crv {
		nominal[i] = -p.Mn / units.KipFt
		factored[i] = -p.Mr / units.KipFt
	}

	return asciigraph.PlotMany([][]float64{nominal, factored},
		asciigraph.Height(18),
		asciigraph.Width(72),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("Mn", "Mr"),
		asciigraph.Caption("Moment capacity (kip-ft) across neutral-axis sweep"),
	)
}

// FormatBarTable lists the bar centroid coordinates, one bar per line,
// numbered from 1 in angular order.
func FormatBarTable(bars []section.BarPosition) string {
	var sb strings.Builder
	for i, b := range bars {
		sb.WriteString(fmt.Sprintf("  Bar %2d: x = %7.2f in, y = %7.2f in\n", i+1, b.X, b.Y))
	}
	return sb.String()
}

// DrawSummaryBox frames a title and result lines in a box for terminal
// output.
func DrawSummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}

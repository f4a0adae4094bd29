package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/OpenSourcePT/PMCurve/internal/curve"
	"github.com/OpenSourcePT/PMCurve/internal/section"
	"github.com/OpenSourcePT/PMCurve/internal/units"
)

// ExportLayoutDiagram renders the circular section outline and the numbered
// bar positions to an image file.
func ExportLayoutDiagram(s *section.Shaft, filename string) error {
	p := plot.New()
	p.Title.Text = "Rebar Layout in Circular Shaft"
	p.X.Label.Text = "X (in)"
	p.Y.Label.Text = "Y (in)"

	// Section outline
	const segments = 180
	outline := make(plotter.XYs, segments+1)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		outline[i] = plotter.XY{X: s.Radius * math.Cos(a), Y: s.Radius * math.Sin(a)}
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Gray{Y: 128}
	p.Add(outlineLine)

	// Centerlines
	for _, pts := range []plotter.XYs{
		{{X: -s.Radius, Y: 0}, {X: s.Radius, Y: 0}},
		{{X: 0, Y: -s.Radius}, {X: 0, Y: s.Radius}},
	} {
		axis, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		axis.LineStyle.Width = vg.Points(0.8)
		axis.LineStyle.Color = color.Black
		p.Add(axis)
	}

	// Bars with their index labels
	bars := s.BarLayout()
	pts := make(plotter.XYs, len(bars))
	labelXYs := make([]plotter.XY, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		pts[i] = plotter.XY{X: b.X, Y: b.Y}
		labelXYs[i] = plotter.XY{X: b.X, Y: b.Y + 0.5}
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	barLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(barLabels)

	p.X.Min, p.X.Max = -s.Radius-2, s.Radius+2
	p.Y.Min, p.Y.Max = -s.Radius-2, s.Radius+2
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// ExportInteractionDiagram renders the nominal and factored P-M curves to an
// image file: moment (kip-ft) on x, axial load (kip, compression positive)
// on y.
func ExportInteractionDiagram(crv curve.Curve, filename string) error {
	p := plot.New()
	p.Title.Text = "P-M Interaction Curve for Circular Concrete Column"
	p.X.Label.Text = "Moment (kip-ft)"
	p.Y.Label.Text = "Axial Load (kip)"

	nominal := make(plotter.XYs, len(crv))
	factored := make(plotter.XYs, len(crv))
	for i, pt := range crv {
		nominal[i] = plotter.XY{X: -pt.Mn / units.KipFt, Y: -pt.Pn / units.Kip}
		factored[i] = plotter.XY{X: -pt.Mr / units.KipFt, Y: -pt.Pr / units.Kip}
	}

	nominalLine, err := plotter.NewLine(nominal)
	if err != nil {
		return err
	}
	nominalLine.LineStyle.Width = vg.Points(2)
	nominalLine.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(nominalLine)
	p.Legend.Add("Nominal (Pn-Mn)", nominalLine)

	factoredLine, err := plotter.NewLine(factored)
	if err != nil {
		return err
	}
	factoredLine.LineStyle.Width = vg.Points(2)
	factoredLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	factoredLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(factoredLine)
	p.Legend.Add("Factored (Pr-Mr)", factoredLine)

	// Zero reference lines across the data extent
	var minM, maxM, minP, maxP float64
	for _, series := range []plotter.XYs{nominal, factored} {
		for _, xy := range series {
			minM = math.Min(minM, xy.X)
			maxM = math.Max(maxM, xy.X)
			minP = math.Min(minP, xy.Y)
			maxP = math.Max(maxP, xy.Y)
		}
	}
	for _, pts := range []plotter.XYs{
		{{X: minM, Y: 0}, {X: maxM, Y: 0}},
		{{X: 0, Y: minP}, {X: 0, Y: maxP}},
	} {
		axis, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		axis.LineStyle.Width = vg.Points(1)
		axis.LineStyle.Color = color.Black
		p.Add(axis)
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	return save(p, 6.5*vg.Inch, 8*vg.Inch, filename)
}

// save writes the plot in the format implied by the file extension,
// defaulting to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

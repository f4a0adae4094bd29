// Package report assembles the PDF design summary: title page, parameter
// and assumption sheets, the layout and interaction figures, and a tabulated
// excerpt of the curve.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
	"github.com/OpenSourcePT/PMCurve/internal/curve"
	"github.com/OpenSourcePT/PMCurve/internal/diagram"
	"github.com/OpenSourcePT/PMCurve/internal/section"
	"github.com/OpenSourcePT/PMCurve/internal/units"
)

// Metadata identifies the design run on the title page.
type Metadata struct {
	Project  string
	Designer string
	Date     time.Time
}

// Every Nth curve point appears in the tabulated excerpt.
const tableStride = 20

// DefaultFilename builds the report file name from the project and date,
// e.g. Pier_2_PM_Curve_2026-08-27.pdf.
func DefaultFilename(project string, date time.Time) string {
	safe := strings.ReplaceAll(strings.TrimSpace(project), " ", "_")
	if safe == "" {
		safe = "UnnamedProject"
	}
	return fmt.Sprintf("%s_PM_Curve_%s.pdf", safe, date.Format("2006-01-02"))
}

// Generate writes the full report to path.
func Generate(path string, meta Metadata, s *section.Shaft, crv curve.Curve) error {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(0.75, 0.75, 0.75)

	titlePage(pdf, meta)
	parameterPage(pdf, s)
	assumptionsPage(pdf)
	if err := figurePages(pdf, s, crv); err != nil {
		return err
	}
	tablePages(pdf, s, crv)

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	return pdf.OutputFileAndClose(path)
}

func titlePage(pdf *gofpdf.Fpdf, meta Metadata) {
	pdf.AddPage()
	pdf.Ln(2.5)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 0.5, "P-M Interaction Curve", "", 1, "C", false, 0, "")
	pdf.Ln(0.2)
	pdf.SetFont("Helvetica", "", 18)
	pdf.CellFormat(0, 0.4, "Circular Concrete Drilled Shaft or Column", "", 1, "C", false, 0, "")
	pdf.Ln(0.2)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 0.35, "AASHTO LRFD 9th Edition-Based Design", "", 1, "C", false, 0, "")
	pdf.Ln(0.6)
	pdf.SetFont("Helvetica", "", 12)
	if meta.Project != "" {
		pdf.CellFormat(0, 0.3, fmt.Sprintf("Project: %s", meta.Project), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 0.3, fmt.Sprintf("Designer: %s", meta.Designer), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 0.3, fmt.Sprintf("Date: %s", meta.Date.Format("January 2, 2006")), "", 1, "C", false, 0, "")
}

func parameterPage(pdf *gofpdf.Fpdf, s *section.Shaft) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 0.3, "Design Parameters Summary")
	pdf.Ln(0.45)

	pdf.SetFont("Courier", "", 10)
	lines := []string{
		fmt.Sprintf("Column Diameter         : %.1f in", s.Diameter),
		fmt.Sprintf("Concrete Cover          : %.1f in", s.Cover),
		fmt.Sprintf("Number of Bars          : %d", s.BarCount),
		fmt.Sprintf("Bar Size (ASTM)         : #%d", s.BarSize),
		fmt.Sprintf("Bar Diameter            : %.3f in", s.Bar.Diameter),
		fmt.Sprintf("Bar Area                : %.3f in2", s.Bar.Area),
		fmt.Sprintf("Total Steel Area (As)   : %.3f in2", s.SteelArea),
		fmt.Sprintf("Gross Area (Ag)         : %.2f in2", s.GrossArea),
		"",
		"Material Properties",
		"",
		fmt.Sprintf("Steel Yield Strength (fy)   : %.1f ksi", s.Fy),
		fmt.Sprintf("Steel Youngs Modulus (Es)   : %.1f ksi", aashto.Es),
		fmt.Sprintf("Steel Yield Strain (ey)     : %.6f", s.YieldStrain),
		fmt.Sprintf("Concrete Strength (f'c)     : %.1f ksi", s.Fc),
		fmt.Sprintf("Concrete Modulus (Ec)       : %.1f ksi", s.Ec),
		fmt.Sprintf("Concrete Crushing Strain    : %.3f", -aashto.EpsilonCrush),
		fmt.Sprintf("Transverse Reinforcement    : %s", s.Ties),
		"",
		"Steel Bar Centroids (in):",
	}
	for i, b := range s.BarLayout() {
		lines = append(lines, fmt.Sprintf("    Bar %2d: x = %7.2f, y = %7.2f", i+1, b.X, b.Y))
	}
	for _, line := range lines {
		pdf.Cell(0, 0.18, line)
		pdf.Ln(0.18)
	}
}

func assumptionsPage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 0.3, "Assumptions & Technical Guidance")
	pdf.Ln(0.45)

	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 0.18, `General:
- Concrete crushing strain assumed = 0.003
- Plane sections remain plane (linear strain profile)
- Stress in steel follows ideal elastic-plastic behavior
- Concrete stress follows Whitney Stress Block Method (0.85 * f'c)
- Area of bars are removed from concrete compression zones by
  their full area as soon as the CG of the bar is inside the
  compression zone.

Bar Reinforcement:
- ASTM standard sizes and areas used
- Bar CG locations are radial and uniformly distributed
- Yield strain (ey) = fy / Es

Design Standard:
- AASHTO LRFD 9th Edition
- Strength reduction factor varies from 0.75 to 0.9 based on strain

Limitations:
- Only valid for circular sections
- No slenderness, buckling, or second-order effects
- Outside of pure compression the effects of confinement
  or lack thereof are ignored`, "", "L", false)
}

func figurePages(pdf *gofpdf.Fpdf, s *section.Shaft, crv curve.Curve) error {
	tmp, err := os.MkdirTemp("", "pmcurve-report")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	layoutPNG := filepath.Join(tmp, "layout.png")
	if err := diagram.ExportLayoutDiagram(s, layoutPNG); err != nil {
		return fmt.Errorf("render layout figure: %w", err)
	}
	curvePNG := filepath.Join(tmp, "curve.png")
	if err := diagram.ExportInteractionDiagram(crv, curvePNG); err != nil {
		return fmt.Errorf("render interaction figure: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.AddPage()
	pdf.ImageOptions(layoutPNG, 0.75, 1.0, 7.0, 0, false, opts, 0, "")
	pdf.AddPage()
	pdf.ImageOptions(curvePNG, 1.0, 0.9, 6.5, 0, false, opts, 0, "")
	return pdf.Error()
}

func tablePages(pdf *gofpdf.Fpdf, s *section.Shaft, crv curve.Curve) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 0.3, "Interaction Curve Tabulation (excerpt)")
	pdf.Ln(0.4)

	pdf.SetFont("Courier", "B", 9)
	header := fmt.Sprintf("%8s %12s %12s %12s %12s", "c (in)", "Pn (kip)", "Mn (kip-ft)", "Pr (kip)", "Mr (kip-ft)")
	pdf.Cell(0, 0.18, header)
	pdf.Ln(0.22)

	pdf.SetFont("Courier", "", 9)
	for i := 0; i < len(crv); i += tableStride {
		p := crv[i]
		pdf.Cell(0, 0.16, fmt.Sprintf("%8.1f %12.1f %12.1f %12.1f %12.1f",
			p.C, -p.Pn/units.Kip, -p.Mn/units.KipFt, -p.Pr/units.Kip, -p.Mr/units.KipFt))
		pdf.Ln(0.16)
		if pdf.GetY() > 10 {
			pdf.AddPage()
		}
	}

	pdf.Ln(0.2)
	pdf.SetFont("Courier", "B", 9)
	pdf.Cell(0, 0.2, fmt.Sprintf("Max factored axial resistance: %.1f kip (%s)",
		curve.MaxAxial(s), s.Ties))
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
	"github.com/OpenSourcePT/PMCurve/internal/config"
	"github.com/OpenSourcePT/PMCurve/internal/curve"
	"github.com/OpenSourcePT/PMCurve/internal/diagram"
	"github.com/OpenSourcePT/PMCurve/internal/report"
	"github.com/OpenSourcePT/PMCurve/internal/section"
	"github.com/OpenSourcePT/PMCurve/internal/units"
)

var (
	// Shaft inputs
	curveDiameter float64
	curveCover    float64
	curveBars     int
	curveBarSize  int
	curveFc       float64
	curveFy       float64
	curveTies     string

	// Run metadata
	curveFile     string
	curveProject  string
	curveDesigner string

	// Output options
	curveShowDiagram bool
	curveFullTable   bool
	curveExportFile  string
	curvePDFFile     string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Generate the P-M interaction curve for a circular column or shaft",
	Long: `Sweep the trial neutral-axis depth over 2-100 in (0.1 in steps) and
compute the nominal (Pn-Mn) and factored (Pr-Mr) capacity at each depth by
strain compatibility with a Whitney rectangular stress block.

The factored axial load is capped at the maximum axial resistance for the
selected transverse reinforcement type (spirals or hoops).

Inputs come from flags, or from a YAML/JSON run file with --file.

Examples:
  # 36 in shaft, 12 #8 bars, 4 in cover, f'c = 4 ksi, fy = 60 ksi, spirals
  pmcurve curve --diameter 36 --cover 4 --bars 12 --size 8 --fc 4 --fy 60

  # From a run file, with console diagram and PDF report
  pmcurve curve --file pier2.yaml --diagram --pdf pier2_report.pdf

  # Export the interaction diagram
  pmcurve curve -d 48 -n 16 -s 9 --ties hoops -o interaction.png`,
	Run: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	// Geometry flags
	curveCmd.Flags().Float64VarP(&curveDiameter, "diameter", "d", 36, "Column diameter (in)")
	curveCmd.Flags().Float64Var(&curveCover, "cover", 4, "Concrete cover to bar surface (in)")
	curveCmd.Flags().IntVarP(&curveBars, "bars", "n", 12, "Number of longitudinal bars")
	curveCmd.Flags().IntVarP(&curveBarSize, "size", "s", 8, "ASTM bar size (3-11)")

	// Material flags
	curveCmd.Flags().Float64Var(&curveFc, "fc", 4, "Concrete compressive strength f'c (ksi)")
	curveCmd.Flags().Float64Var(&curveFy, "fy", 60, "Steel yield strength fy (ksi)")
	curveCmd.Flags().StringVar(&curveTies, "ties", "spirals", "Transverse reinforcement: spirals or hoops")

	// Run metadata
	curveCmd.Flags().StringVarP(&curveFile, "file", "f", "", "Path to YAML/JSON run file (overrides shaft flags)")
	curveCmd.Flags().StringVar(&curveProject, "project", "", "Project name for the report")
	curveCmd.Flags().StringVar(&curveDesigner, "designer", "", "Designer name for the report")

	// Output options
	curveCmd.Flags().BoolVar(&curveShowDiagram, "diagram", false, "Show console capacity diagrams")
	curveCmd.Flags().BoolVar(&curveFullTable, "table", false, "Print every curve point instead of an excerpt")
	curveCmd.Flags().StringVarP(&curveExportFile, "output", "o", "", "Export interaction diagram to file (png, svg, pdf)")
	curveCmd.Flags().StringVar(&curvePDFFile, "pdf", "", "Write the PDF design report to this path")
}

func runCurve(cmd *cobra.Command, args []string) {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initiate logger")
		os.Exit(1)
	}
	defer logger.Sync()

	shaft, meta, err := buildRun()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	crv, err := curve.Generate(logger, shaft)
	if err != nil {
		logger.Error("failed to generate interaction curve",
			zap.String("op", "curve"),
			zap.Error(err),
		)
		return
	}
	maxPn := curve.MaxAxial(shaft)

	printCurveResults(shaft, crv, maxPn)

	if curveShowDiagram {
		fmt.Println(diagram.PlotAxialSweep(crv))
		fmt.Println()
		fmt.Println(diagram.PlotMomentSweep(crv))
		fmt.Println()
	}

	if curveExportFile != "" {
		if err := diagram.ExportInteractionDiagram(crv, curveExportFile); err != nil {
			logger.Error("failed to export interaction diagram",
				zap.String("path", curveExportFile),
				zap.Error(err),
			)
			return
		}
		fmt.Printf("  Interaction diagram written to %s\n\n", curveExportFile)
	}

	if curvePDFFile != "" {
		if err := report.Generate(curvePDFFile, meta, shaft, crv); err != nil {
			logger.Error("failed to generate PDF report",
				zap.String("path", curvePDFFile),
				zap.Error(err),
			)
			return
		}
		fmt.Printf("  PDF report written to %s\n\n", curvePDFFile)
	}
}

// buildRun assembles the shaft and report metadata from the run file when
// --file is given, otherwise from flags.
func buildRun() (*section.Shaft, report.Metadata, error) {
	meta := report.Metadata{
		Project:  curveProject,
		Designer: curveDesigner,
		Date:     time.Now(),
	}

	if curveFile != "" {
		run, err := config.LoadRun(curveFile)
		if err != nil {
			return nil, meta, err
		}
		if meta.Project == "" {
			meta.Project = run.Project
		}
		if meta.Designer == "" {
			meta.Designer = run.Designer
		}
		if curvePDFFile == "" {
			curvePDFFile = run.Output.PDF
		}
		if curveExportFile == "" {
			curveExportFile = run.Output.Curve
		}
		shaft, err := run.Build()
		return shaft, meta, err
	}

	ties, err := aashto.ParseTieType(curveTies)
	if err != nil {
		return nil, meta, err
	}
	shaft, err := section.New(curveDiameter, curveCover, curveBars, curveBarSize, curveFc, curveFy, ties)
	return shaft, meta, err
}

func printCurveResults(s *section.Shaft, crv curve.Curve, maxPn float64) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     P-M INTERACTION CURVE - AASHTO LRFD 9TH EDITION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column Diameter:\t%.1f in\n", s.Diameter)
	fmt.Fprintf(w, "  Concrete Cover:\t%.1f in\n", s.Cover)
	fmt.Fprintf(w, "  Reinforcement:\t%d - #%d bars\n", s.BarCount, s.BarSize)
	fmt.Fprintf(w, "  Bar Area / Diameter:\t%.2f in² / %.3f in\n", s.Bar.Area, s.Bar.Diameter)
	fmt.Fprintf(w, "  f'c:\t%.1f ksi\n", s.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f ksi\n", s.Fy)
	fmt.Fprintf(w, "  Transverse Reinforcement:\t%s\n", s.Ties)
	w.Flush()
	fmt.Println()

	fmt.Println("DERIVED PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gross Area (Ag):\t%.2f in²\n", s.GrossArea)
	fmt.Fprintf(w, "  Steel Area (As):\t%.2f in²\n", s.SteelArea)
	fmt.Fprintf(w, "  Reinforcement Ratio:\t%.4f\n", s.SteelArea/s.GrossArea)
	fmt.Fprintf(w, "  Bar Ring Radius:\t%.2f in\n", s.RingRadius())
	fmt.Fprintf(w, "  Es:\t%.0f ksi\n", aashto.Es)
	fmt.Fprintf(w, "  Yield Strain (εy):\t%.6f\n", s.YieldStrain)
	fmt.Fprintf(w, "  Concrete Modulus (Ec):\t%.1f ksi\n", s.Ec)
	w.Flush()
	fmt.Println()

	fmt.Println("INTERACTION CURVE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	stride := 40
	if curveFullTable {
		stride = 1
	}
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  c (in)\tPn (kip)\tMn (kip-ft)\tPr (kip)\tMr (kip-ft)\n")
	for i := 0; i < len(crv); i += stride {
		p := crv[i]
		fmt.Fprintf(w, "  %.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			p.C, -p.Pn/units.Kip, -p.Mn/units.KipFt, -p.Pr/units.Kip, -p.Mr/units.KipFt)
	}
	w.Flush()
	if !curveFullTable {
		fmt.Printf("  (%d points computed; rerun with --table for all)\n", len(crv))
	}
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("CAPACITY SUMMARY", []string{
		fmt.Sprintf("Max factored axial resistance: %.1f kip", maxPn),
		fmt.Sprintf("Transverse coefficient: %.2f (%s)", aashto.TransverseCoefficient(s.Ties), s.Ties),
		fmt.Sprintf("Curve points: %d (c = %.1f to %.1f in)", len(crv), crv[0].C, crv[len(crv)-1].C),
	}))
	fmt.Println()
}

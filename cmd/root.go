package cmd

import (
	"fmt"
	"os"

	"github.com/OpenSourcePT/PMCurve/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pmcurve",
	Short: "P-M Curve Generator for Circular Concrete Columns and Shafts",
	Long: `pmcurve - P-M Interaction Curve Generator

A CLI tool that computes the axial-load/bending-moment interaction
capacity of circular reinforced-concrete columns and drilled shafts
by strain compatibility with a Whitney rectangular stress block,
following AASHTO LRFD (9th Edition) design philosophy.

The tool produces:
  - The nominal (Pn-Mn) and factored (Pr-Mr) interaction curves
  - The maximum factored axial resistance (spiral or hoop detailing)
  - Rebar layout and interaction diagrams (png, svg, pdf)
  - A multi-page PDF design summary`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   pmcurve v%-47s║\n", version.Version)
		fmt.Println("  ║   P-M Curve Generator for Circular Concrete Columns      ║")
		fmt.Println("  ║   and Drilled Shafts · AASHTO LRFD 9th Edition           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Strain-compatibility capacity sweep over neutral-axis depth")
		fmt.Println("    • Resistance factor interpolation (0.75 – 0.90)")
		fmt.Println("    • Maximum axial load cap per transverse reinforcement type")
		fmt.Println("    • Rebar layout and interaction curve diagrams")
		fmt.Println("    • PDF design report")
		fmt.Println()
		fmt.Println("  Use 'pmcurve --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

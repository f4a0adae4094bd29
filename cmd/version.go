package cmd

import (
	"fmt"

	"github.com/OpenSourcePT/PMCurve/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pmcurve",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pmcurve v%s\n", version.Version)
		fmt.Println("P-M Interaction Curve Generator for Circular Concrete Columns and Shafts")
		fmt.Println("Based on AASHTO LRFD 9th Edition")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/internal/app"
)

var (
	viewScale float64
	viewWatch bool
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open a scan in the interactive viewer",
	Long: `Open a scan in the interactive 3D viewer.

Without --scale, distances are measured against a reference line: place two
reference points on a feature of known length with Ctrl+Click and type its
length (e.g. "75 cm") into the overlay. With --scale, model units are
converted directly and no reference line is needed.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().Float64Var(&viewScale, "scale", 0, "real-world meters per model unit (0 = use a reference line)")
	viewCmd.Flags().BoolVar(&viewWatch, "watch", true, "reload the scan when the file changes")

	// The root command doubles as view
	rootCmd.Flags().Float64Var(&viewScale, "scale", 0, "real-world meters per model unit (0 = use a reference line)")
	rootCmd.Flags().BoolVar(&viewWatch, "watch", true, "reload the scan when the file changes")
}

func runView(cmd *cobra.Command, args []string) {
	if viewScale < 0 {
		fmt.Fprintln(os.Stderr, "Error: --scale must be positive")
		os.Exit(1)
	}

	err := app.Run(app.Options{
		File:  args[0],
		Scale: viewScale,
		Watch: viewWatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

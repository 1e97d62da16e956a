package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/version"
)

var rootCmd = &cobra.Command{
	Use:   "aqueduct",
	Short: "Viewer and measurement tool for 3D scans of the Iraklio aqueducts",
	Long: `aqueduct is a viewer and measurement tool for photogrammetry scans of the
aqueduct remains in the greater Iraklio area. It loads STL and glTF scans,
renders them interactively and measures real-world distances on the mesh,
either against a fixed scale or a reference line of known length.`,
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// A bare file argument opens the viewer
		if len(args) == 0 {
			cmd.Help()
			return
		}
		runView(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/analysis"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
)

var infoScale float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a scan file",
	Long:  "Show dimensions, triangle count, surface area and vertex density of a scan. With --scale, dimensions are also shown as real-world lengths.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoScale, "scale", 0, "real-world meters per model unit")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := mesh.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scan: %v\n", err)
		os.Exit(1)
	}

	stats := analysis.Describe(model)

	fmt.Println("Scan Information")
	fmt.Println("================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", stats.TriangleCount)
	fmt.Printf("  Surface Area: %.6f square units\n", stats.SurfaceArea)
	fmt.Printf("  Avg Vertex Spacing: %.6f units\n\n", stats.AvgVertexSpacing)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(stats.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(stats.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(stats.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", stats.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", stats.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", stats.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", stats.BoundingBox.Diagonal())

	if infoScale > 0 {
		fmt.Printf("\nReal-world size (scale %g):\n", infoScale)
		fmt.Printf("  %s\n", analysis.ScaledDimensions(stats, infoScale))
	}
}

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/analysis"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/units"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
	measureScale              float64
	refLength                 string
	refSpan                   float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure the distance between two points on a scan",
	Long: `Measure the straight-line distance between two 3D points, snapped to the
nearest scan vertices.

The distance is reported in model units. To convert to real-world lengths,
pass either --scale (meters per model unit) or a reference: --ref-span is a
distance in model units whose real length --ref-length you know.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
	measureCmd.Flags().Float64Var(&measureScale, "scale", 0, "real-world meters per model unit")
	measureCmd.Flags().StringVar(&refLength, "ref-length", "", `real-world length of the reference span, e.g. "75 cm"`)
	measureCmd.Flags().Float64Var(&refSpan, "ref-span", 0, "reference span in model units")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
	measureCmd.MarkFlagsRequiredTogether("ref-length", "ref-span")
	measureCmd.MarkFlagsMutuallyExclusive("scale", "ref-length")
}

func runMeasure(cmd *cobra.Command, args []string) {
	filename := args[0]

	p1 := geometry.NewVector3(point1X, point1Y, point1Z)
	p2 := geometry.NewVector3(point2X, point2Y, point2Z)

	model, err := mesh.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scan: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	// Snap both points to the scan
	nearest1, dist1 := analysis.NearestVertex(model, p1)
	nearest2, dist2 := analysis.NearestVertex(model, p2)

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatVector(p1))
	if dist1 > 0 {
		fmt.Printf("  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatVector(nearest1), dist1)
	}

	fmt.Printf("\nPoint 2: %s\n", analysis.FormatVector(p2))
	if dist2 > 0 {
		fmt.Printf("  Nearest vertex: %s (distance: %.6f)\n", analysis.FormatVector(nearest2), dist2)
	}

	span := nearest1.Distance(nearest2)
	fmt.Printf("\nDistance: %.6f units\n", span)

	factor, err := conversionFactor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if factor > 0 {
		fmt.Printf("Real-world distance: %s\n", units.FormatMeters(span*factor, units.DefaultDecimals))
	}
}

// conversionFactor resolves meters-per-model-unit from the flags; 0 means
// no conversion was requested.
func conversionFactor() (float64, error) {
	if measureScale < 0 {
		return 0, fmt.Errorf("--scale must be positive")
	}
	if measureScale > 0 {
		return measureScale, nil
	}
	if refLength == "" {
		return 0, nil
	}

	if refSpan <= 0 {
		return 0, fmt.Errorf("--ref-span must be positive")
	}
	refMeters := units.ParseLength(refLength)
	if math.IsNaN(refMeters) {
		return 0, fmt.Errorf("invalid reference length %q", refLength)
	}
	return refMeters / refSpan, nil
}

// Package analysis computes summary statistics for a loaded scan.
package analysis

import (
	"fmt"
	"math"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/units"
)

// Stats summarizes a scan model
type Stats struct {
	TriangleCount    int
	BoundingBox      geometry.BoundingBox
	Dimensions       geometry.Vector3
	SurfaceArea      float64
	AvgVertexSpacing float64
}

// Describe computes the statistics for a model
func Describe(model *mesh.Model) *Stats {
	stats := &Stats{
		TriangleCount: model.TriangleCount(),
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
	}
	stats.Dimensions = stats.BoundingBox.Size()
	stats.AvgVertexSpacing = AverageVertexSpacing(model)
	return stats
}

// AverageVertexSpacing estimates the average edge length by sampling up to
// 1000 triangles. Used as the base for adaptive pick tolerances.
func AverageVertexSpacing(model *mesh.Model) float64 {
	if len(model.Triangles) == 0 {
		return 1.0
	}

	sampleSize := min(len(model.Triangles), 1000)
	total := 0.0
	edges := 0

	for i := 0; i < sampleSize; i++ {
		lengths := model.Triangles[i].EdgeLengths()
		total += lengths[0] + lengths[1] + lengths[2]
		edges += 3
	}

	return total / float64(edges)
}

// NearestVertex finds the model vertex nearest to a point
func NearestVertex(model *mesh.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64

	for _, triangle := range model.Triangles {
		for _, vertex := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if distance := point.Distance(vertex); distance < minDistance {
				minDistance = distance
				nearest = vertex
			}
		}
	}

	return nearest, minDistance
}

// ScaledDimensions formats the model dimensions as real-world lengths given
// a meters-per-model-unit scale factor.
func ScaledDimensions(stats *Stats, scale float64) string {
	size := stats.Dimensions
	return fmt.Sprintf("%s × %s × %s",
		units.FormatMeters(size.X*scale, units.DefaultDecimals),
		units.FormatMeters(size.Y*scale, units.DefaultDecimals),
		units.FormatMeters(size.Z*scale, units.DefaultDecimals))
}

// FormatVector formats a 3D point for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

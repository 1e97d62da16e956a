package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

// pickVertex casts a ray through the given screen position and returns the
// nearest model vertex within the selection threshold, or nil when the
// click missed the mesh.
func (app *App) pickVertex(screenPos rl.Vector2) *geometry.Vector3 {
	ray := rl.GetMouseRay(screenPos, app.Camera.camera)

	var nearestVertex geometry.Vector3
	minDist := float64(math.MaxFloat32)
	found := false

	// Adaptive selection threshold based on vertex density.
	// Sparse scans need a larger threshold than dense ones.
	baseThreshold := float64(app.Model.size) * 0.05
	spacingFactor := float64(app.Model.avgVertexSpacing) * 3.0
	selectionThreshold := math.Max(baseThreshold, spacingFactor)

	vertexMap := make(map[geometry.Vector3]bool)
	for _, triangle := range app.Model.model.Triangles {
		for _, vertex := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			if vertexMap[vertex] {
				continue
			}
			vertexMap[vertex] = true

			vertexPos := rl.Vector3{X: float32(vertex.X), Y: float32(vertex.Y), Z: float32(vertex.Z)}
			dist := rayToPointDistance(ray, vertexPos)

			if dist < minDist && dist < selectionThreshold {
				minDist = dist
				nearestVertex = vertex
				found = true
			}
		}
	}

	if !found {
		return nil
	}
	return &nearestVertex
}

// updateHoverVertex finds the vertex under the mouse cursor
func (app *App) updateHoverVertex() {
	hit := app.pickVertex(rl.GetMousePosition())
	if hit != nil {
		app.Interaction.hoveredVertex = *hit
		app.Interaction.hasHoveredVertex = true
	} else {
		app.Interaction.hasHoveredVertex = false
	}
}

// rayToPointDistance calculates distance from ray to point
func rayToPointDistance(ray rl.Ray, point rl.Vector3) float64 {
	toPoint := rl.Vector3Subtract(point, ray.Position)

	// Project onto ray direction
	t := rl.Vector3DotProduct(toPoint, ray.Direction)
	if t < 0 {
		t = 0
	}

	closest := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	diff := rl.Vector3Subtract(point, closest)
	return float64(rl.Vector3Length(diff))
}

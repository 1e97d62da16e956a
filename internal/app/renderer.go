package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
)

// meshToRaylib converts a scan model to a Raylib mesh with baked lighting
func meshToRaylib(model *mesh.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	raylibMesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4) // Vertex colors for baked lighting

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Diffuse lighting with 30% ambient floor
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		baseColor := 200.0
		r := uint8(baseColor * lightIntensity * 0.7)
		g := uint8(baseColor * lightIntensity * 0.65)
		b := uint8(baseColor * lightIntensity * 0.55)

		for i, vertex := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(vertex.X)
			vertices[idx*3+1] = float32(vertex.Y)
			vertices[idx*3+2] = float32(vertex.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = float32(i & 1)
			texcoords[idx*2+1] = float32(i >> 1)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		raylibMesh.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		raylibMesh.Normals = &normals[0]
	}
	if len(texcoords) > 0 {
		raylibMesh.Texcoords = &texcoords[0]
	}
	if len(colors) > 0 {
		raylibMesh.Colors = &colors[0]
	}

	rl.UploadMesh(&raylibMesh, false)

	return raylibMesh
}

// drawWireframe renders the model edges using thin cylinders, which blend
// better with the filled surface than GL line primitives.
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	wireframeThickness := app.Camera.distance * 0.0001 // Scale with camera distance for constant screen thickness
	cylinderSegments := int32(8)

	// Track drawn edges to avoid duplicates
	drawnEdges := make(map[string]bool)

	for _, triangle := range app.Model.model.Triangles {
		v1 := rl.Vector3{X: float32(triangle.V1.X), Y: float32(triangle.V1.Y), Z: float32(triangle.V1.Z)}
		v2 := rl.Vector3{X: float32(triangle.V2.X), Y: float32(triangle.V2.Y), Z: float32(triangle.V2.Z)}
		v3 := rl.Vector3{X: float32(triangle.V3.X), Y: float32(triangle.V3.Y), Z: float32(triangle.V3.Z)}

		edges := [][2]rl.Vector3{{v1, v2}, {v2, v3}, {v3, v1}}
		for _, edge := range edges {
			edgeKey := fmt.Sprintf("%.6f,%.6f,%.6f-%.6f,%.6f,%.6f", edge[0].X, edge[0].Y, edge[0].Z, edge[1].X, edge[1].Y, edge[1].Z)
			if !drawnEdges[edgeKey] {
				drawnEdges[edgeKey] = true
				rl.DrawCylinderEx(edge[0], edge[1], wireframeThickness, wireframeThickness, cylinderSegments, wireframeColor)
			}
		}
	}
}

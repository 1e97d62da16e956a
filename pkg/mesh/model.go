// Package mesh loads scanned site models. STL (ASCII and binary) and
// glTF/GLB are supported; everything is flattened into a triangle soup,
// which is all the viewer and the measurement tool need.
package mesh

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

// Model represents a loaded scan as a triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, triangle := range m.Triangles {
		total += triangle.Area()
	}
	return total
}

// Load reads a scan file, dispatching on the file extension.
func Load(filename string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".stl":
		return LoadSTL(filename)
	case ".glb", ".gltf":
		return LoadGLTF(filename)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .stl, .gltf or .glb)", filepath.Ext(filename))
	}
}

package mesh

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

// LoadGLTF reads a glTF or binary GLB scan and flattens every triangle
// primitive into the model. Normals are derived from the vertex winding,
// matching what the STL path produces.
func LoadGLTF(filename string) (*Model, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file: %w", err)
	}

	model := NewModel(filepath.Base(filename))

	for _, m := range doc.Meshes {
		if err := appendPrimitives(doc, m, model); err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
	}

	if model.TriangleCount() == 0 {
		return nil, fmt.Errorf("no triangle primitives in %s", filename)
	}
	return model, nil
}

func appendPrimitives(doc *gltf.Document, m *gltf.Mesh, model *Model) error {
	for _, prim := range m.Primitives {
		// Mode 0 means unset in practice; everything else non-triangle
		// (points, lines, strips) is skipped.
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		if prim.Indices != nil {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				addTriangle(model,
					positions[indices[i]],
					positions[indices[i+1]],
					positions[indices[i+2]])
			}
		} else {
			for i := 0; i+2 < len(positions); i += 3 {
				addTriangle(model, positions[i], positions[i+1], positions[i+2])
			}
		}
	}
	return nil
}

func addTriangle(model *Model, v1, v2, v3 [3]float32) {
	triangle := geometry.NewTriangle(
		geometry.Vector3{},
		vec3FromFloat32(v1),
		vec3FromFloat32(v2),
		vec3FromFloat32(v3),
	)
	triangle.Normal = triangle.CalculateNormal()
	model.AddTriangle(triangle)
}

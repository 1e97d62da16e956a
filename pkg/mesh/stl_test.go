package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const asciiSTL = `solid tetra
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 1 0 0
    endloop
  endfacet
endsolid tetra
`

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadSTLASCII(t *testing.T) {
	path := writeTempFile(t, "tetra.stl", []byte(asciiSTL))

	model, err := LoadSTL(path)
	if err != nil {
		t.Fatalf("LoadSTL failed: %v", err)
	}

	if model.Name != "tetra" {
		t.Errorf("name failed: expected %q, got %q", "tetra", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Errorf("triangle count failed: expected 2, got %d", model.TriangleCount())
	}
	if math.Abs(model.SurfaceArea()-1.0) > 1e-10 {
		t.Errorf("surface area failed: expected 1.0, got %v", model.SurfaceArea())
	}
}

func TestLoadSTLBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary scan")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1}) // normal
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 0}) // v1
	binary.Write(&buf, binary.LittleEndian, [3]float32{2, 0, 0}) // v2
	binary.Write(&buf, binary.LittleEndian, [3]float32{0, 2, 0}) // v3
	binary.Write(&buf, binary.LittleEndian, uint16(0))           // attribute

	path := writeTempFile(t, "scan.stl", buf.Bytes())

	model, err := LoadSTL(path)
	if err != nil {
		t.Fatalf("LoadSTL failed: %v", err)
	}

	if model.TriangleCount() != 1 {
		t.Fatalf("triangle count failed: expected 1, got %d", model.TriangleCount())
	}
	if math.Abs(model.SurfaceArea()-2.0) > 1e-6 {
		t.Errorf("surface area failed: expected 2.0, got %v", model.SurfaceArea())
	}

	bbox := model.BoundingBox()
	if bbox.Max.X != 2 || bbox.Max.Y != 2 {
		t.Errorf("bounding box failed: got max %v", bbox.Max)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("scan.obj"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(-1, 2, 3))
	bbox.Extend(NewVector3(4, -5, 6))

	expectedMin := NewVector3(-1, -5, 3)
	expectedMax := NewVector3(4, 2, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 4, 6))

	expected := NewVector3(1, 2, 3)
	if bbox.Center() != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, bbox.Center())
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(3, 4, 0))

	if math.Abs(bbox.Diagonal()-5.0) > 1e-10 {
		t.Errorf("Diagonal failed: expected 5.0, got %v", bbox.Diagonal())
	}
}

func TestTriangleArea(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected 6.0, got %v", area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.CalculateNormal()
	expected := NewVector3(0, 0, 1)
	if normal.Distance(expected) > 1e-10 {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

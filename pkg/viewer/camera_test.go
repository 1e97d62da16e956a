package viewer

import (
	"math"
	"testing"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

func testBBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-1, -1, -1))
	bbox.Extend(geometry.NewVector3(1, 1, 1))
	return bbox
}

func TestProjectCenter(t *testing.T) {
	camera := NewCamera(testBBox())

	x, y, z := camera.Project(camera.Target, 800, 600)
	if math.Abs(x-400) > 1e-6 || math.Abs(y-300) > 1e-6 {
		t.Errorf("projection failed: expected screen center, got (%v, %v)", x, y)
	}
	if z <= 0 {
		t.Errorf("depth failed: expected positive depth, got %v", z)
	}
}

func TestRotateClamp(t *testing.T) {
	camera := NewCamera(testBBox())
	camera.Rotate(10, 0)

	maxAngle := math.Pi/2 - 0.1
	if camera.RotationX > maxAngle {
		t.Errorf("rotation clamp failed: got %v", camera.RotationX)
	}
}

func TestZoomFloor(t *testing.T) {
	camera := NewCamera(testBBox())
	for i := 0; i < 100; i++ {
		camera.Zoom(-0.9)
	}
	if camera.Distance < 0.1 {
		t.Errorf("zoom floor failed: got %v", camera.Distance)
	}
}

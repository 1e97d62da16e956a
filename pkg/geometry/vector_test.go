package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	if math.Abs(length-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5.0, got %v", length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(1, 1, 1)
	v2 := NewVector3(4, 5, 1)
	distance := v1.Distance(v2)

	if math.Abs(distance-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5.0, got %v", distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1.0, got %v", normalized.Length())
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	v := NewVector3(0, 0, 0)
	normalized := v.Normalize()

	if normalized != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: expected zero vector, got %v", normalized)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	if math.Abs(result-32.0) > 1e-10 {
		t.Errorf("Dot failed: expected 32.0, got %v", result)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(10, 10)
	v2 := NewVector2(13, 14)
	distance := v1.Distance(v2)

	if math.Abs(distance-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5.0, got %v", distance)
	}
}

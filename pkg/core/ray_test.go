package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
	}{
		{"Already unit", NewVec3(0, 0, -1)},
		{"Long axis-aligned", NewVec3(0, 5, 0)},
		{"Arbitrary", NewVec3(1.3, -0.97, -1)},
		{"Very short", NewVec3(1e-8, 0, -1e-8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(NewVec3(0, 0, 0), tt.direction)
			if math.Abs(ray.Direction.Length()-1) > tolerance {
				t.Errorf("Expected unit direction, got length %v", ray.Direction.Length())
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	point := ray.At(2.5)
	expected := NewVec3(1, 2, 0.5)
	if point.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, point)
	}

	if origin := ray.At(0); origin.Subtract(ray.Origin).Length() > tolerance {
		t.Errorf("At(0) should return the origin, got %v", origin)
	}
}

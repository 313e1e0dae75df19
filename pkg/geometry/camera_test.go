package geometry

import (
	"math"
	"testing"

	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"
)

func newTestCamera(width, height int) *Camera {
	return NewCamera(CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		Width:          width,
		Height:         height,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	})
}

func TestCamera_GetRay(t *testing.T) {
	// Odd dimensions so the center pixel maps to u=v=0.5 exactly
	camera := newTestCamera(801, 601)
	viewportWidth := 801.0 / 601.0 * 2.0

	tests := []struct {
		name     string
		i, j     int
		expected core.Vec3 // pre-normalization direction
	}{
		{
			name:     "Center pixel looks straight down -Z",
			i:        400,
			j:        300,
			expected: core.NewVec3(0, 0, -1),
		},
		{
			name:     "Pixel (0,0) maps to the lower-left viewport corner",
			i:        0,
			j:        0,
			expected: core.NewVec3(-viewportWidth/2, -1, -1),
		},
		{
			name:     "Pixel (width-1,height-1) maps to the upper-right corner",
			i:        800,
			j:        600,
			expected: core.NewVec3(viewportWidth/2, 1, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j)

			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected ray origin at the camera center, got %v", ray.Origin)
			}

			expected := tt.expected.Normalize()
			if ray.Direction.Subtract(expected).Length() > tolerance {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
		})
	}
}

func TestCamera_RayDirectionsAreUnitLength(t *testing.T) {
	camera := newTestCamera(64, 48)

	for j := 0; j < 48; j += 7 {
		for i := 0; i < 64; i += 7 {
			ray := camera.GetRay(i, j)
			if math.Abs(ray.Direction.Length()-1) > tolerance {
				t.Fatalf("Ray (%d,%d) direction length %v, expected 1", i, j, ray.Direction.Length())
			}
		}
	}
}

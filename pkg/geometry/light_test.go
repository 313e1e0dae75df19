package geometry

import (
	"math"
	"testing"

	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"
)

func TestPointLight_IrradianceAt(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 0), 1.5)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"Unit distance", core.NewVec3(1, 0, 0), 1.5},
		{"Double distance quarters irradiance", core.NewVec3(0, 2, 0), 0.375},
		{"Diagonal distance", core.NewVec3(1, 1, 1), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.IrradianceAt(tt.point)
			if math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

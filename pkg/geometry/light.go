package geometry

import "github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"

// PointLight represents a point light with inverse-square falloff
type PointLight struct {
	Position  core.Vec3
	Intensity float64 // non-negative, unitless radiometric scale
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// IrradianceAt returns the light's irradiance at the given point,
// attenuated by the squared distance
func (l PointLight) IrradianceAt(point core.Vec3) float64 {
	d := l.Position.Subtract(point).Length()
	return l.Intensity / (d * d)
}

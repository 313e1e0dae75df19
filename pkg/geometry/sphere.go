package geometry

import (
	"math"

	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"
)

// Sphere represents a sphere with a diffuse surface
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3
	Albedo float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3, albedo float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
		Albedo: albedo,
	}
}

// Hit tests if a ray intersects the sphere at a strictly positive distance,
// returning the nearer root. A ray whose origin lies inside or on the sphere
// reports a miss: only the smaller root is ever considered, even when the
// farther root is positive.
func (s *Sphere) Hit(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2.0 * a)
	t2 := (-b + sqrtD) / (2.0 * a)

	t := math.Min(t1, t2)
	return t, t > 0
}

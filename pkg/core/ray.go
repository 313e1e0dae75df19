package core

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized at construction
// and stays unit length for the ray's lifetime; it must be non-zero.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

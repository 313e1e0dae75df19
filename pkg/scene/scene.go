package scene

import (
	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"
	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/geometry"
)

// Image dimensions are fixed constants; there is no configuration surface
const (
	Width  = 800
	Height = 600
)

// Scene holds the fixed single-sphere scene
type Scene struct {
	Camera     *geometry.Camera
	Sphere     *geometry.Sphere
	Light      geometry.PointLight
	Background core.Vec3
	Width      int
	Height     int
}

// NewDefaultScene creates the fixed scene: a red sphere one unit in front
// of the camera, lit by a single point light up and to the right
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		Width:          Width,
		Height:         Height,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	})

	return &Scene{
		Camera:     camera,
		Sphere:     geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, core.NewVec3(1, 0, 0), 1.0),
		Light:      geometry.NewPointLight(core.NewVec3(1, 1, 0), 1.5),
		Background: core.NewVec3(0.1, 0.1, 0.1),
		Width:      Width,
		Height:     Height,
	}
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetSphere returns the scene's sphere
func (s *Scene) GetSphere() *geometry.Sphere {
	return s.Sphere
}

// GetLight returns the scene's point light
func (s *Scene) GetLight() geometry.PointLight {
	return s.Light
}

// GetBackgroundColor returns the color for rays that miss the sphere
func (s *Scene) GetBackgroundColor() core.Vec3 {
	return s.Background
}

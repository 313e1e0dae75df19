package renderer

import (
	"math"

	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"
	"github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/geometry"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetSphere() *geometry.Sphere
	GetLight() geometry.PointLight
	GetBackgroundColor() core.Vec3
}

// Raytracer shades camera rays against a scene
type Raytracer struct {
	scene  Scene
	width  int
	height int
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
	}
}

// RayColor traces a ray against the scene's sphere and returns the shaded
// color, or the background color on a miss. Shading is local diffuse with
// inverse-square light falloff; there is no shadow ray and no bounce.
func (rt *Raytracer) RayColor(ray core.Ray) core.Vec3 {
	sphere := rt.scene.GetSphere()

	t, hit := sphere.Hit(ray)
	if !hit {
		return rt.scene.GetBackgroundColor()
	}

	light := rt.scene.GetLight()
	point := ray.At(t)
	normal := point.Subtract(sphere.Center).Normalize()
	lightDir := light.Position.Subtract(point).Normalize()

	cosine := math.Max(0, normal.Dot(lightDir))
	irradiance := light.IrradianceAt(point)

	return sphere.Color.Multiply(sphere.Albedo * irradiance * cosine)
}

// RenderBounds renders rows [rowStart, rowEnd) into the shared framebuffer.
// Callers must hand each row to at most one renderer at a time.
func (rt *Raytracer) RenderBounds(fb *Framebuffer, rowStart, rowEnd int) {
	camera := rt.scene.GetCamera()
	for j := rowStart; j < rowEnd; j++ {
		for i := 0; i < rt.width; i++ {
			fb.Set(i, j, rt.RayColor(camera.GetRay(i, j)))
		}
	}
}

// Render renders the scene into a new framebuffer using a pool of parallel
// row workers. Pixels are independent, so the result is identical for any
// worker count; numWorkers <= 0 selects one worker per CPU.
func Render(scene Scene, width, height, numWorkers int) *Framebuffer {
	fb := NewFramebuffer(width, height)
	NewWorkerPool(scene, fb, numWorkers).Render()
	return fb
}

package geometry

import "github.com/KhoaTran235/Ray-Tracing-Sphere/pkg/core"

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	Center         core.Vec3 // Camera position
	Width          int       // Image width in pixels
	Height         int       // Image height in pixels
	ViewportHeight float64   // Viewport height in world units
	FocalLength    float64   // Distance from camera to viewport
}

// Camera maps pixel coordinates to world-space rays through a virtual viewport
type Camera struct {
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	width           int
	height          int
}

// NewCamera creates a camera from the given configuration. The viewport is
// centered on the forward (-Z) axis at the focal distance, with its width
// derived from the image aspect ratio.
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)
	viewportWidth := aspectRatio * config.ViewportHeight

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		center:          config.Center,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		width:           config.Width,
		height:          config.Height,
	}
}

// GetRay generates the ray for pixel (i, j). The mapping is linear and
// inclusive at both ends: u = i/(width-1), v = j/(height-1), with j
// increasing toward the top of the viewport. One ray per pixel, no jitter.
func (c *Camera) GetRay(i, j int) core.Ray {
	u := float64(i) / float64(c.width-1)
	v := float64(j) / float64(c.height-1)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.center)

	return core.NewRay(c.center, direction)
}

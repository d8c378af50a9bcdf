package renderer

import (
	"fmt"
	"math"

	"github.com/photark/go-raytracer/pkg/core"
)

// DegenerateCameraError reports an unusable camera configuration: zero field
// of view, coincident center and look-at point, or a zero-length up vector.
// It is raised at construction time, before any rendering work begins.
type DegenerateCameraError struct {
	Reason string
}

func (e *DegenerateCameraError) Error() string {
	return fmt.Sprintf("degenerate camera: %s", e.Reason)
}

// CameraConfig describes a camera placement
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees, in (0, 180)
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables defocus blur
	FocusDistance float64   // Distance to the focus plane; 0 = distance to LookAt
}

// Camera maps normalized image-plane coordinates to primary rays
type Camera struct {
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis: u right, v up, w backward
	lensRadius      float64
}

// NewCamera builds a camera from a configuration, rejecting degenerate ones
func NewCamera(config CameraConfig) (*Camera, error) {
	if !config.Center.IsFinite() || !config.LookAt.IsFinite() || !config.Up.IsFinite() {
		return nil, &DegenerateCameraError{Reason: "non-finite configuration"}
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, &DegenerateCameraError{Reason: fmt.Sprintf("vertical fov %g outside (0, 180)", config.VFov)}
	}
	if config.AspectRatio <= 0 {
		return nil, &DegenerateCameraError{Reason: "aspect ratio must be positive"}
	}
	if config.Aperture < 0 {
		return nil, &DegenerateCameraError{Reason: "negative aperture"}
	}

	view := config.LookAt.Subtract(config.Center)
	if view.NearZero() {
		return nil, &DegenerateCameraError{Reason: "center and look-at coincide"}
	}
	if config.Up.NearZero() {
		return nil, &DegenerateCameraError{Reason: "zero-length up vector"}
	}
	if config.Up.Cross(view).NearZero() {
		return nil, &DegenerateCameraError{Reason: "up vector parallel to view direction"}
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = view.Length()
	}
	if focusDistance <= 0 || math.IsNaN(focusDistance) || math.IsInf(focusDistance, 0) {
		return nil, &DegenerateCameraError{Reason: "focus distance must be positive and finite"}
	}

	// Viewport half-extents from the vertical field of view
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := config.AspectRatio * viewportHeight

	w := view.Negate().Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		center:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a primary ray for normalized image-plane coordinates
// (s, t) in [0, 1]. With a positive lens radius the ray origin is jittered
// on the lens disk, which produces defocus blur away from the focus plane.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.center
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin))
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

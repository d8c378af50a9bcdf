package scene

import (
	"github.com/photark/go-raytracer/pkg/core"
)

// Background supplies the radiance for rays that escape the scene, as a
// function of ray direction.
type Background interface {
	Sample(ray core.Ray) core.Vec3
}

// GradientBackground is a vertical sky gradient between two colors
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// Sample interpolates between bottom and top along the ray's vertical angle
func (g *GradientBackground) Sample(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1, 1] to [0, 1] and lerp
	t := 0.5 * (unitDirection.Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// SolidBackground is a constant background color
type SolidBackground struct {
	Color core.Vec3
}

// NewSolidBackground creates a constant-color background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Sample returns the constant color for every direction
func (s *SolidBackground) Sample(ray core.Ray) core.Vec3 {
	return s.Color
}

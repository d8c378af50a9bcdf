package scene

import (
	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/geometry"
	"github.com/photark/go-raytracer/pkg/material"
)

// Scene owns the shapes, the acceleration structure over them, and the
// background. It is immutable after Build and safe to share across workers.
type Scene struct {
	shapes     []geometry.Shape
	bvh        *geometry.BVH
	background Background
}

// Build validates every shape and assembles the scene. Validation is
// atomic: the first degenerate shape fails the whole construction and no
// scene is returned. A nil background defaults to black.
func Build(shapes []geometry.Shape, background Background) (*Scene, error) {
	for _, shape := range shapes {
		if err := shape.Validate(); err != nil {
			return nil, err
		}
	}

	if background == nil {
		background = NewSolidBackground(core.NewVec3(0, 0, 0))
	}

	return &Scene{
		shapes:     shapes,
		bvh:        geometry.NewBVH(shapes),
		background: background,
	}, nil
}

// Hit returns the closest intersection in (tMin, tMax), or false if the ray
// escapes the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.bvh.Hit(ray, tMin, tMax)
}

// Background returns the background radiance for a ray that hit nothing
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	return s.background.Sample(ray)
}

// ShapeCount returns the number of primitives in the scene
func (s *Scene) ShapeCount() int {
	return len(s.shapes)
}

// Bounds returns the bounding box of the whole scene
func (s *Scene) Bounds() core.AABB {
	return s.bvh.Bounds()
}

package geometry

import (
	"math"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3 // Unit length, enforced by the constructor
	Material material.Material
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Validate checks the plane for degenerate parameters
func (p *Plane) Validate() error {
	if !p.Point.IsFinite() || !p.Normal.IsFinite() {
		return &InvalidGeometryError{Shape: "plane", Reason: "non-finite parameters"}
	}
	if p.Normal.NearZero() {
		return &InvalidGeometryError{Shape: "plane", Reason: "zero-length normal"}
	}
	if p.Material == nil {
		return &InvalidGeometryError{Shape: "plane", Reason: "missing material"}
	}
	return nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never intersect
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox returns a bounding box for this plane. Infinite planes get a
// large box, thin along the normal axis when the plane is axis-aligned so
// the BVH can still separate it from the rest of the scene.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const thickness = 1e-3

	switch {
	case math.Abs(p.Normal.X) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(p.Point.X-thickness, -largeValue, -largeValue),
			core.NewVec3(p.Point.X+thickness, largeValue, largeValue),
		)
	case math.Abs(p.Normal.Y) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, p.Point.Y-thickness, -largeValue),
			core.NewVec3(largeValue, p.Point.Y+thickness, largeValue),
		)
	case math.Abs(p.Normal.Z) > 1-1e-9:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, p.Point.Z-thickness),
			core.NewVec3(largeValue, largeValue, p.Point.Z+thickness),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}

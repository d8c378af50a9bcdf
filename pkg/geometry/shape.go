package geometry

import (
	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/material"
)

// Shape is a geometric primitive that rays can intersect.
//
// Hit returns the closest intersection with t in (tMin, tMax), or false when
// there is none. Callers pass a tMin strictly above zero to suppress
// self-intersection at the previous hit point.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
	Validate() error
}

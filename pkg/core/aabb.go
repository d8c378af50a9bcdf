package core

import "math"

// AABB is an axis-aligned bounding box. Invariant: Min <= Max componentwise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	boxMin := points[0]
	boxMax := points[0]

	for _, point := range points[1:] {
		boxMin.X = math.Min(boxMin.X, point.X)
		boxMin.Y = math.Min(boxMin.Y, point.Y)
		boxMin.Z = math.Min(boxMin.Z, point.Z)

		boxMax.X = math.Max(boxMax.X, point.X)
		boxMax.Y = math.Max(boxMax.Y, point.Y)
		boxMax.Z = math.Max(boxMax.Z, point.Z)
	}

	return AABB{Min: boxMin, Max: boxMax}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Contains reports whether the other AABB lies entirely inside this one
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && other.Max.X <= aabb.Max.X &&
		aabb.Min.Y <= other.Min.Y && other.Max.Y <= aabb.Max.Y &&
		aabb.Min.Z <= other.Min.Z && other.Max.Z <= aabb.Max.Z
}

// Hit tests if a ray intersects this AABB using the slab method. The
// interval [tMin, tMax] is intersected axis by axis; the box is hit when the
// interval stays non-empty.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	boxMin := [3]float64{aabb.Min.X, aabb.Min.Y, aabb.Min.Z}
	boxMax := [3]float64{aabb.Max.X, aabb.Max.Y, aabb.Max.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(direction[axis]) < 1e-12 {
			// Ray is parallel to this slab; hit only if the origin lies inside it
			if origin[axis] < boxMin[axis] || origin[axis] > boxMax[axis] {
				return false
			}
			continue
		}

		invD := 1.0 / direction[axis]
		t0 := (boxMin[axis] - origin[axis]) * invD
		t1 := (boxMax[axis] - origin[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Axis returns the center coordinate along the given axis (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(axis int) float64 {
	c := aabb.Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

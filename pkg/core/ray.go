package core

// Ray is a half-line parametrized as Origin + t*Direction. The direction is
// not required to be normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsValid reports whether the ray can be traced: a finite origin and a
// finite, nonzero direction. Invalid rays are treated as misses rather than
// propagated as errors.
func (r Ray) IsValid() bool {
	return r.Origin.IsFinite() && r.Direction.IsFinite() && !r.Direction.NearZero()
}

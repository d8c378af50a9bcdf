package geometry

import "fmt"

// InvalidGeometryError reports a degenerate shape: non-positive sphere
// radius, zero-area triangle, non-finite coordinates. It is raised at scene
// build time; rendering never starts while any shape fails validation.
type InvalidGeometryError struct {
	Shape  string // shape kind, e.g. "sphere"
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid %s geometry: %s", e.Shape, e.Reason)
}

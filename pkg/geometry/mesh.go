package geometry

import (
	"fmt"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/material"
)

// TriangleMesh is an indexed triangle mesh sharing a single material. It is
// a construction convenience: the mesh flattens into individual triangles
// that the scene BVH indexes directly.
type TriangleMesh struct {
	triangles []*Triangle
}

// NewTriangleMesh builds a mesh from a vertex list and flat triangle indices
// (three per face). Degenerate faces (zero area, out-of-range indices are an
// error) are dropped silently, as imported meshes routinely contain a few.
func NewTriangleMesh(vertices []core.Vec3, indices []int, mat material.Material) (*TriangleMesh, error) {
	if len(indices)%3 != 0 {
		return nil, &InvalidGeometryError{
			Shape:  "mesh",
			Reason: fmt.Sprintf("index count %d is not a multiple of 3", len(indices)),
		}
	}

	mesh := &TriangleMesh{}
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 < 0 || i0 >= len(vertices) ||
			i1 < 0 || i1 >= len(vertices) ||
			i2 < 0 || i2 >= len(vertices) {
			return nil, &InvalidGeometryError{
				Shape:  "mesh",
				Reason: fmt.Sprintf("face %d references vertex out of range", i/3),
			}
		}

		tri := NewTriangle(vertices[i0], vertices[i1], vertices[i2], mat)
		if tri.Validate() != nil {
			continue // skip degenerate faces
		}
		mesh.triangles = append(mesh.triangles, tri)
	}

	if len(mesh.triangles) == 0 {
		return nil, &InvalidGeometryError{Shape: "mesh", Reason: "no valid triangles"}
	}

	return mesh, nil
}

// TriangleCount returns the number of valid triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

// Shapes returns the mesh triangles as scene shapes
func (m *TriangleMesh) Shapes() []Shape {
	shapes := make([]Shape, len(m.triangles))
	for i, tri := range m.triangles {
		shapes[i] = tri
	}
	return shapes
}

// BoundingBox returns the box enclosing the whole mesh
func (m *TriangleMesh) BoundingBox() core.AABB {
	bbox := m.triangles[0].BoundingBox()
	for _, tri := range m.triangles[1:] {
		bbox = bbox.Union(tri.BoundingBox())
	}
	return bbox
}

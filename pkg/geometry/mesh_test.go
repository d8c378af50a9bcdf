package geometry

import (
	"testing"

	"github.com/photark/go-raytracer/pkg/core"
)

func TestTriangleMesh_BuildsQuad(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	indices := []int{0, 1, 2, 0, 2, 3}

	mesh, err := NewTriangleMesh(vertices, indices, testMaterial())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}
	if len(mesh.Shapes()) != 2 {
		t.Errorf("Expected 2 shapes, got %d", len(mesh.Shapes()))
	}

	bbox := mesh.BoundingBox()
	expected := core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0))
	if bbox != expected {
		t.Errorf("Expected bounds %v, got %v", expected, bbox)
	}
}

func TestTriangleMesh_DropsDegenerateFaces(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(2, 0, 0), // collinear with 0 and 1
	}
	// One valid face, one zero-area face
	indices := []int{0, 1, 2, 0, 1, 3}

	mesh, err := NewTriangleMesh(vertices, indices, testMaterial())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("Expected degenerate face to be dropped, got %d triangles", mesh.TriangleCount())
	}
}

func TestTriangleMesh_Errors(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}

	tests := []struct {
		name    string
		indices []int
	}{
		{"index count not a multiple of 3", []int{0, 1}},
		{"index out of range", []int{0, 1, 3}},
		{"negative index", []int{0, 1, -1}},
		{"all faces degenerate", []int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangleMesh(vertices, tt.indices, testMaterial()); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

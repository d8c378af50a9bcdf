package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/geometry"
	"github.com/photark/go-raytracer/pkg/material"
)

// LoadMesh reads a triangle mesh from disk, dispatching on the file
// extension. OBJ, STL, glTF and GLB are supported.
func LoadMesh(path string, mat material.Material) (*geometry.TriangleMesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path, mat)
	case ".stl":
		return LoadSTL(path, mat)
	case ".gltf", ".glb":
		return LoadGLTF(path, mat)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
	}
}

// LoadOBJ reads a Wavefront OBJ file into a triangle mesh with the given
// material
func LoadOBJ(path string, mat material.Material) (*geometry.TriangleMesh, error) {
	mesh, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return nil, fmt.Errorf("load obj %q: %w", path, err)
	}
	return fromFauxgl(mesh, mat)
}

// LoadSTL reads an STL file into a triangle mesh with the given material
func LoadSTL(path string, mat material.Material) (*geometry.TriangleMesh, error) {
	mesh, err := fauxgl.LoadSTL(path)
	if err != nil {
		return nil, fmt.Errorf("load stl %q: %w", path, err)
	}
	return fromFauxgl(mesh, mat)
}

// fromFauxgl converts a loaded fauxgl mesh into our indexed triangle mesh.
// OBJ and STL triangles arrive already expanded, so vertices are emitted
// per corner.
func fromFauxgl(mesh *fauxgl.Mesh, mat material.Material) (*geometry.TriangleMesh, error) {
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("mesh contains no triangles")
	}

	vertices := make([]core.Vec3, 0, len(mesh.Triangles)*3)
	indices := make([]int, 0, len(mesh.Triangles)*3)

	for _, t := range mesh.Triangles {
		for _, p := range [3]fauxgl.Vector{t.V1.Position, t.V2.Position, t.V3.Position} {
			indices = append(indices, len(vertices))
			vertices = append(vertices, core.NewVec3(p.X, p.Y, p.Z))
		}
	}

	return geometry.NewTriangleMesh(vertices, indices, mat)
}

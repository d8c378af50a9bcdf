package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/geometry"
	"github.com/photark/go-raytracer/pkg/material"
)

// LoadGLTF reads a glTF or GLB file into a triangle mesh with the given
// material. All triangle primitives across all meshes in the document are
// merged; non-triangle primitives (lines, points) are skipped.
func LoadGLTF(path string, mat material.Material) (*geometry.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %q: %w", path, err)
	}

	var vertices []core.Vec3
	var indices []int

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read positions for mesh %q: %w", m.Name, err)
			}

			base := len(vertices)
			for _, p := range positions {
				vertices = append(vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
			}

			if prim.Indices != nil {
				primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("read indices for mesh %q: %w", m.Name, err)
				}
				for _, i := range primIndices {
					indices = append(indices, base+int(i))
				}
			} else {
				// No index buffer; positions form sequential triangles
				for i := range positions {
					indices = append(indices, base+i)
				}
			}
		}
	}

	if len(indices) == 0 {
		return nil, fmt.Errorf("gltf %q contains no triangle primitives", path)
	}

	return geometry.NewTriangleMesh(vertices, indices, mat)
}

package scene

import (
	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/geometry"
	"github.com/photark/go-raytracer/pkg/loaders"
	"github.com/photark/go-raytracer/pkg/material"
	"github.com/photark/go-raytracer/pkg/renderer"
)

// NewMeshScene loads a triangle mesh from disk and stages it on a matte
// ground plane under a sky gradient. The camera is placed from the mesh
// bounds so the model fills the frame regardless of its size.
func NewMeshScene(path string) (*Scene, renderer.CameraConfig, error) {
	metalBody := material.NewMetal(core.NewVec3(0.7, 0.7, 0.75), 0.15)

	mesh, err := loaders.LoadMesh(path, metalBody)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	bounds := mesh.BoundingBox()
	center := bounds.Center()
	size := bounds.Size()
	extent := size.Length()

	lambertianGround := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	ground := geometry.NewPlane(
		core.NewVec3(0, bounds.Min.Y, 0),
		core.NewVec3(0, 1, 0),
		lambertianGround,
	)

	shapes := append(mesh.Shapes(), ground)

	background := NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)

	// Back off along the diagonal far enough to frame the whole mesh
	cameraConfig := renderer.CameraConfig{
		Center:      center.Add(core.NewVec3(0.6, 0.4, 1.0).Multiply(extent)),
		LookAt:      center,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: 16.0 / 9.0,
	}

	s, err := Build(shapes, background)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}
	return s, cameraConfig, nil
}

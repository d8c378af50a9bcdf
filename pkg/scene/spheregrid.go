package scene

import (
	"math"

	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/geometry"
	"github.com/photark/go-raytracer/pkg/material"
	"github.com/photark/go-raytracer/pkg/renderer"
)

// sphereGridMap lays out the grid scene. 'g' and 'r' are matte green and
// red spheres pulled toward the camera; everything else is a mirror sphere
// whose depth wobbles with its grid position.
var sphereGridMap = []string{
	".........",
	".ggg.....",
	".g...rrr.",
	".g.g.r.r.",
	".ggg.rrr.",
	".........",
}

const (
	gridSpacing = 0.5
	gridRadius  = 0.25
)

// NewSphereGridScene creates a 9x6 grid of spheres spelling two letters in
// matte green and red against a field of mirrors, lit by a small emissive
// sphere between the camera and the grid.
func NewSphereGridScene() (*Scene, renderer.CameraConfig, error) {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, -5),
		LookAt:      core.NewVec3(0, 0, 2),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        33.4,
		AspectRatio: 4.0 / 3.0,
	}

	mirror := material.NewMetal(core.NewVec3(0.6, 0.6, 0.6), 0.02)
	green := material.NewLambertian(core.NewVec3(0.1, 1.0, 0.1))
	red := material.NewLambertian(core.NewVec3(1.0, 0.1, 0.1))
	lamp := material.NewEmissive(core.NewVec3(2.0, 2.0, 2.0))

	var shapes []geometry.Shape
	for row, line := range sphereGridMap {
		for col := 0; col < len(line); col++ {
			mat := material.Material(mirror)
			z := 2.0

			switch line[col] {
			case 'g':
				z -= 0.5
				mat = green
			case 'r':
				z -= 0.5
				mat = red
			default:
				z += math.Sin(float64(col+row)) * 0.8
			}

			center := core.NewVec3(
				-2.0+float64(col)*gridSpacing,
				1.25-float64(row)*gridSpacing,
				z,
			)
			shapes = append(shapes, geometry.NewSphere(center, gridRadius, mat))
		}
	}

	shapes = append(shapes, geometry.NewSphere(core.NewVec3(0, 0, 0), 0.2, lamp))

	background := NewSolidBackground(core.NewVec3(0.02, 0.1, 0.17))

	s, err := Build(shapes, background)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}
	return s, cameraConfig, nil
}

package scene

import (
	"github.com/photark/go-raytracer/pkg/core"
	"github.com/photark/go-raytracer/pkg/geometry"
	"github.com/photark/go-raytracer/pkg/material"
	"github.com/photark/go-raytracer/pkg/renderer"
)

// NewDefaultScene creates a showcase scene with one sphere per material
// kind over a ground plane, plus a small emissive sphere, under a sky
// gradient. The returned camera config carries the intended viewpoint.
func NewDefaultScene() (*Scene, renderer.CameraConfig, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2),
		LookAt:        core.NewVec3(0, 0.5, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Auto: distance to LookAt
	}

	lambertianGround := material.NewLambertian(core.NewVec3(0.48, 0.48, 0.0))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	lamp := material.NewEmissive(core.NewVec3(4.0, 3.8, 3.5))

	shapes := []geometry.Shape{
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertianGround),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),

		// Blue core inside a glass shell
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue),

		geometry.NewSphere(core.NewVec3(2, 2.5, 0.5), 0.5, lamp),
	}

	background := NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0), // Sky blue at the top
		core.NewVec3(1.0, 1.0, 1.0), // White at the horizon
	)

	s, err := Build(shapes, background)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}
	return s, cameraConfig, nil
}

package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/photark/go-raytracer/pkg/core"
)

func validCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	}
}

func TestNewCamera_RejectsDegenerateConfigs(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CameraConfig)
	}{
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"negative fov", func(c *CameraConfig) { c.VFov = -10 }},
		{"180 degree fov", func(c *CameraConfig) { c.VFov = 180 }},
		{"zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }},
		{"center equals look-at", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"zero up vector", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 0) }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, -2) }},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -0.1 }},
		{"nan center", func(c *CameraConfig) { c.Center = core.NewVec3(math.NaN(), 0, 0) }},
		{"negative focus distance", func(c *CameraConfig) { c.FocusDistance = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validCameraConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if camera != nil {
				t.Error("Expected nil camera on error")
			}
			var degenerate *DegenerateCameraError
			if !errors.As(err, &degenerate) {
				t.Errorf("Expected DegenerateCameraError, got %T", err)
			}
		})
	}
}

func TestNewCamera_AcceptsValidConfig(t *testing.T) {
	camera, err := NewCamera(validCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if camera == nil {
		t.Fatal("Expected camera, got nil")
	}
}

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	config := validCameraConfig()
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := camera.GetRay(0.5, 0.5, core.NewPixelSampler(1, 0, 0))
	direction := ray.Direction.Normalize()
	expected := config.LookAt.Subtract(config.Center).Normalize()

	if direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, direction)
	}
	if ray.Origin != config.Center {
		t.Errorf("Pinhole camera ray must start at the center, got %v", ray.Origin)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// 90 degree vertical fov at aspect 1: the top edge of the image plane is
	// 45 degrees off the view axis.
	camera, err := NewCamera(validCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewPixelSampler(1, 0, 0)
	top := camera.GetRay(0.5, 1.0, sampler).Direction.Normalize()

	angle := math.Acos(top.Dot(camera.Forward()))
	if math.Abs(angle-math.Pi/4) > 1e-9 {
		t.Errorf("Expected 45 degrees to top edge, got %f degrees", angle*180/math.Pi)
	}
}

func TestCamera_ApertureJittersOrigin(t *testing.T) {
	config := validCameraConfig()
	config.Aperture = 0.5
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sampler := core.NewPixelSampler(1, 0, 0)
	jittered := false
	for i := 0; i < 20; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() > 0.25+1e-12 {
			t.Fatalf("Lens sample %v outside the lens radius", offset)
		}
		if offset.Length() > 0 {
			jittered = true
		}
	}
	if !jittered {
		t.Error("Aperture never jittered the ray origin")
	}
}

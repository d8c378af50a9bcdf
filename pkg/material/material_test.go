package material

import (
	"math"
	"testing"

	"github.com/photark/go-raytracer/pkg/core"
)

func surfaceHit(normal core.Vec3, frontFace bool) HitRecord {
	return HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		T:         1.0,
		FrontFace: frontFace,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.2)
	mat := NewLambertian(albedo)
	hit := surfaceHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	sampler := core.NewPixelSampler(1, 0, 0)
	for i := 0; i < 100; i++ {
		result, didScatter := mat.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian must always scatter")
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points into the surface", result.Scattered.Direction)
		}
		if result.Scattered.Origin != hit.Point {
			t.Fatal("Scattered ray must originate at the hit point")
		}
	}
}

func TestLambertian_ClampsAlbedo(t *testing.T) {
	mat := NewLambertian(core.NewVec3(1.5, -0.2, 0.5))
	expected := core.NewVec3(1.0, 0.0, 0.5)
	if mat.Albedo != expected {
		t.Errorf("Expected clamped albedo %v, got %v", expected, mat.Albedo)
	}
}

func TestReflect(t *testing.T) {
	v := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)

	r := Reflect(v, n)
	expected := core.NewVec3(1, 1, 0).Normalize()
	if r.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, r)
	}
}

func TestMetal_MirrorScatter(t *testing.T) {
	mat := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	hit := surfaceHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	sampler := core.NewPixelSampler(1, 0, 0)
	result, didScatter := mat.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Expected mirror to scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected mirror direction %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestMetal_FuzzyScatterStaysAboveSurface(t *testing.T) {
	mat := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.8)
	hit := surfaceHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	sampler := core.NewPixelSampler(2, 0, 0)
	for i := 0; i < 200; i++ {
		result, didScatter := mat.Scatter(rayIn, hit, sampler)
		if didScatter && result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatal("Scattered ray reported but direction points into the surface")
		}
	}
}

func TestMetal_ClampsFuzz(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Fuzz != 1.0 {
		t.Errorf("Expected fuzz clamped to 1, got %f", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Fuzz != 0.0 {
		t.Errorf("Expected fuzz clamped to 0, got %f", m.Fuzz)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting glass at 45 degrees: 1.5 * sin(45°) > 1, so refraction is
	// impossible and the ray must reflect regardless of the sampler.
	hit := surfaceHit(core.NewVec3(0, 1, 0), false)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0).Normalize())

	sampler := core.NewPixelSampler(3, 0, 0)
	result, didScatter := glass.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Dielectric must always scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Clear glass must not attenuate, got %v", result.Attenuation)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	uv := core.NewVec3(0, -1, 0)
	n := core.NewVec3(0, 1, 0)

	refracted := Refract(uv, n, 1.0/1.5)
	if refracted.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Normal incidence must pass straight through, got %v", refracted)
	}
}

func TestReflectance_SchlickBounds(t *testing.T) {
	for cosine := 0.0; cosine <= 1.0; cosine += 0.05 {
		r := Reflectance(cosine, 1.0/1.5)
		if r < 0 || r > 1 {
			t.Fatalf("Reflectance %f at cosine %f outside [0, 1]", r, cosine)
		}
	}

	// Grazing incidence approaches total reflection
	if r := Reflectance(0, 1.0/1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", r)
	}
}

func TestEmissive(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	lamp := NewEmissive(emission)
	hit := surfaceHit(core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, didScatter := lamp.Scatter(rayIn, hit, core.NewPixelSampler(4, 0, 0)); didScatter {
		t.Error("Emissive material must not scatter")
	}
	if got := lamp.Emit(rayIn); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

package core

import (
	"math"
	"testing"
)

func vec3Equal(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply scalar", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply componentwise", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec3Equal(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot=12, got %f", dot)
	}

	v := NewVec3(3, 4, 0)
	if v.Length() != 5 {
		t.Errorf("Expected length=5, got %f", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("Expected length squared=25, got %f", v.LengthSquared())
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if !vec3Equal(v, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	v := NewVec3(0, 0, 0).Normalize()
	if !v.IsFinite() {
		t.Errorf("Normalizing zero vector produced non-finite components: %v", v)
	}
	if !vec3Equal(v, NewVec3(0, 0, 0), 0) {
		t.Errorf("Expected zero vector, got %v", v)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !vec3Equal(v, NewVec3(0, 0.5, 1), 0) {
		t.Errorf("Expected (0, 0.5, 1), got %v", v)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)
	if !vec3Equal(v, NewVec3(0.5, 1.0, 0.0), 1e-12) {
		t.Errorf("Expected (0.5, 1, 0), got %v", v)
	}

	// Negative inputs must not produce NaN
	v = NewVec3(-0.1, 0, 0).GammaCorrect(2.0)
	if !v.IsFinite() {
		t.Errorf("Gamma correction of negative input produced non-finite value: %v", v)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"finite", NewVec3(1, 2, 3), true},
		{"nan component", NewVec3(math.NaN(), 0, 0), false},
		{"inf component", NewVec3(0, math.Inf(1), 0), false},
		{"negative inf", NewVec3(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.expected {
				t.Errorf("Expected IsFinite=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-13, -1e-13, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-6, 0, 0).NearZero() {
		t.Error("Expected small but significant vector to not be near zero")
	}
}

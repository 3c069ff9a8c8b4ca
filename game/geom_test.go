package game

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	v := Normalize(Vec2{})
	if v.X != 0 || v.Y != 0 {
		t.Fatalf("Normalize(0,0) = (%f,%f), want (0,0)", v.X, v.Y)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := Normalize(Vec2{3, 4})
	if math.Abs(v.X-0.6) > 1e-9 || math.Abs(v.Y-0.8) > 1e-9 {
		t.Fatalf("Normalize(3,4) = (%f,%f), want (0.6,0.8)", v.X, v.Y)
	}
	if mag := math.Hypot(v.X, v.Y); math.Abs(mag-1) > 1e-9 {
		t.Fatalf("normalized magnitude = %f, want 1", mag)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("Clamp(-5,0,10) = %f, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("Clamp(15,0,10) = %f, want 10", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Fatalf("Clamp(7,0,10) = %f, want 7", got)
	}
}

func TestDist(t *testing.T) {
	if got := Dist(Vec2{0, 0}, Vec2{3, 4}); math.Abs(got-5) > 1e-9 {
		t.Fatalf("Dist = %f, want 5", got)
	}
}

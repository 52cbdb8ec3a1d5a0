package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}

func TestVec3Array(t *testing.T) {
	a := [3]float32{1, 2, 3}
	if got := Vec3FromArray(a).Array(); got != a {
		t.Errorf("round trip = %v, want %v", got, a)
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		deg  float32
		want float32
	}{
		{0, 0},
		{180, 3.1415927},
		{-90, -1.5707964},
	}
	for _, tt := range tests {
		if got := Radians(tt.deg); abs(got-tt.want) > 1e-6 {
			t.Errorf("Radians(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/omath"
)

func TestTransformAxes(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{1, 2, 3}, 90, 0)
	if got := tr.Forward(); !vecNear(got, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("expected to face +X, got %v", got)
	}
	if got := tr.Right(); !vecNear(got, mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Fatalf("expected right to be -Z, got %v", got)
	}
	if got := tr.Up(); !vecNear(got, omath.Up, 1e-9) {
		t.Fatalf("expected up to stay +Y, got %v", got)
	}
}

func TestTransformRotateIsRelative(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{}, 350, 0)
	tr.Rotate(0, 30, 0)
	if yaw := tr.Yaw(); math.Abs(yaw-20) > 1e-9 {
		t.Fatalf("expected a yaw of 20, got %f", yaw)
	}
}

func TestTransformLookAt(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{5, 0, 5}, 12, 0)
	before := tr
	tr.LookAt(mgl64.Vec3{5, 0, 5})
	if tr != before {
		t.Fatalf("expected looking at the own position to do nothing")
	}

	tr.LookAt(mgl64.Vec3{5, 0, -5})
	if yaw := tr.Yaw(); math.Abs(yaw-180) > 1e-9 {
		t.Fatalf("expected a yaw of 180, got %f", yaw)
	}
}

func TestLocationRotationDelta(t *testing.T) {
	loc := NewLocation(NewTransform(mgl64.Vec3{}, 10, 0))
	loc.Commit()
	loc.Current.Rotate(0, 25, 0)

	if yaw := omath.Yaw(loc.RotationDelta()); math.Abs(yaw-25) > 1e-9 {
		t.Fatalf("expected a rotation delta of 25, got %f", yaw)
	}
}

// vecNear reports whether a and b are within eps of each other.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

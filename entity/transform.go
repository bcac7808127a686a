package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/omath"
)

// Transform is the position and orientation of an entity in the world.
type Transform struct {
	// Position is the position of the entity in the world.
	Position mgl64.Vec3
	// Rotation is the orientation of the entity. The zero value is not a valid rotation; use NewTransform or
	// set it to mgl64.QuatIdent().
	Rotation mgl64.Quat
}

// NewTransform returns a Transform at pos with the yaw and pitch passed, in degrees.
func NewTransform(pos mgl64.Vec3, yaw, pitch float64) Transform {
	return Transform{Position: pos, Rotation: omath.EulerToQuat(pitch, yaw, 0)}
}

// Forward returns the direction the entity is facing.
func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(omath.Forward)
}

// Up returns the local up axis of the entity.
func (t Transform) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(omath.Up)
}

// Right returns the local right axis of the entity.
func (t Transform) Right() mgl64.Vec3 {
	return t.Rotation.Rotate(omath.Right)
}

// EulerAngles returns the rotation of the entity as {pitch, yaw, roll} in degrees, each in [0, 360).
func (t Transform) EulerAngles() mgl64.Vec3 {
	return omath.QuatToEuler(t.Rotation)
}

// Yaw returns the yaw of the entity in degrees, in [0, 360).
func (t Transform) Yaw() float64 {
	return omath.Yaw(t.Rotation)
}

// Rotate rotates the entity by the Euler angles passed, in degrees, relative to its current orientation.
func (t *Transform) Rotate(pitch, yaw, roll float64) {
	t.Rotation = t.Rotation.Mul(omath.EulerToQuat(pitch, yaw, roll)).Normalize()
}

// LookAt orients the entity so that its forward axis points at target, keeping its up axis as close to the
// world up axis as possible. Nothing happens if target is at the entity's position.
func (t *Transform) LookAt(target mgl64.Vec3) {
	dir := target.Sub(t.Position)
	if dir.Len() < omath.Epsilon {
		return
	}
	t.Rotation = omath.LookRotation(dir, omath.Up)
}

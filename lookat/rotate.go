package lookat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/omath"
)

// lookAtHorizontal faces the target at the entity's own height, so that only the yaw changes.
func (c *Controller) lookAtHorizontal() {
	t := &c.loc.Current
	t.LookAt(omath.Flatten(c.target).Add(mgl64.Vec3{0, t.Position.Y(), 0}))
}

// rotateWithSlerp interpolates the orientation towards the yaw that faces the target.
func (c *Controller) rotateWithSlerp(s Slerp, deltaTime float64) {
	t := &c.loc.Current

	dir := c.target.Sub(t.Position)
	goal := omath.QuatToEuler(omath.LookRotation(dir, omath.Up))
	t.Rotation = omath.Slerp(t.Rotation, omath.EulerToQuat(0, goal.Y(), 0), deltaTime*s.Speed)
}

// rotateWithinThreshold turns the entity by the part of its yaw offset that lies outside the dead zone,
// damping the rotation over time. While the trigger is held and instant rotation is enabled, the full offset
// is applied at once instead.
func (c *Controller) rotateWithinThreshold(s Threshold, deltaTime float64, trigger bool) {
	t := &c.loc.Current

	c.hAngle = omath.YawTo(t.Position, t.Forward(), c.target)
	if c.hasOverride {
		c.hAngleCustom = omath.YawTo(c.override.Position, c.override.Forward, c.target)
	} else {
		c.hAngleCustom = c.hAngle
	}

	if trigger && s.InstantRotateOnTrigger {
		t.Rotate(0, c.hAngleCustom, 0)
		return
	}

	c.targetOffset = ThresholdOffset(c.hAngle, s.Angle)
	delta := omath.SmoothDampAngle(0, c.targetOffset, &c.velocity, s.MinTimeToReach, s.MaxRotationSpeed, deltaTime)
	t.Rotate(0, delta, 0)
}

// rotateWithSmoothDamp damps the absolute yaw of the entity towards the yaw that faces the target.
func (c *Controller) rotateWithSmoothDamp(s SmoothDampDirect, deltaTime float64) {
	t := &c.loc.Current

	dir := c.target.Sub(t.Position)
	goal := omath.QuatToEuler(omath.LookRotation(dir, omath.Up))
	yaw := omath.SmoothDampAngle(t.Yaw(), goal.Y(), &c.velocity, s.MinTimeToReach, s.MaxRotationSpeed, deltaTime)
	t.Rotation = omath.EulerToQuat(0, yaw, 0)
}

// ThresholdOffset returns how far hAngle lies outside of a dead zone of threshold degrees on either side of
// 0, keeping the sign of hAngle. Angles inside the dead zone result in 0.
func ThresholdOffset(hAngle, threshold float64) float64 {
	threshold = math.Max(0, threshold)
	return omath.Sign(hAngle) * math.Max(0, math.Abs(hAngle)-threshold)
}

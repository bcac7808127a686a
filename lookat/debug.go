package lookat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/omath"
)

// DebugState is a snapshot of a Controller taken after a tick, for tooling that visualises it.
type DebugState struct {
	Kind Kind

	Position mgl64.Vec3
	Forward  mgl64.Vec3
	Up       mgl64.Vec3
	Rotation mgl64.Quat
	Yaw      float64
	// YawDelta is the yaw the entity turned during the last tick, in (-180, 180].
	YawDelta float64

	// TurnAngle is the full angle in degrees the entity rotated by during the last tick, pitch included.
	TurnAngle float64

	HasTarget bool
	Target    mgl64.Vec3

	// ThresholdAngle is the dead zone of the threshold strategy. It is only set if HasThreshold is true.
	ThresholdAngle float64
	HasThreshold   bool

	HAngle       float64
	HAngleCustom float64
	TargetOffset float64
	DampVelocity float64

	Ticks uint64
}

// DebugState returns a snapshot of the controller.
func (c *Controller) DebugState() DebugState {
	cur := c.loc.Current
	st := DebugState{
		Kind:         c.strategy.Kind(),
		Position:     cur.Position,
		Forward:      cur.Forward(),
		Up:           cur.Up(),
		Rotation:     cur.Rotation,
		Yaw:          cur.Yaw(),
		YawDelta:     omath.DeltaAngle(c.loc.Last.Yaw(), cur.Yaw()),
		TurnAngle:    omath.QuatAngle(mgl64.QuatIdent(), c.loc.RotationDelta()),
		HasTarget:    c.hasTarget,
		Target:       c.target,
		HAngle:       c.hAngle,
		HAngleCustom: c.hAngleCustom,
		TargetOffset: c.targetOffset,
		DampVelocity: c.velocity,
		Ticks:        c.ticks,
	}
	if s, ok := c.strategy.(Threshold); ok {
		st.ThresholdAngle, st.HasThreshold = s.Angle, true
	}
	return st
}

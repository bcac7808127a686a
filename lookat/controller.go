package lookat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/assert"
	"github.com/oomph-ac/lookat/entity"
)

// Reference is a position and heading used in place of the entity's own when working out how far the
// entity has to turn in order to instantly face its target.
type Reference struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3
}

// Controller rotates a single entity towards a target point once per tick. A Controller must not be updated
// from multiple goroutines at the same time, but separate Controllers are fully independent.
type Controller struct {
	// loc holds the transform of the entity and the one it had before the last tick.
	loc entity.Location
	// history holds the transforms the entity had after each of its last ticks.
	history *entity.History

	target    mgl64.Vec3
	hasTarget bool

	override    Reference
	hasOverride bool

	strategy Strategy
	// velocity is the angular velocity carried between ticks by the damping strategies. It is reset whenever
	// the strategy is switched to one of a different kind.
	velocity float64

	description string
	log         Logger

	// hAngle is the yaw offset from the entity's forward axis to the target during the last threshold tick.
	hAngle float64
	// hAngleCustom is hAngle measured from the override reference, if any.
	hAngleCustom float64
	// targetOffset is the part of hAngle that was outside of the dead zone during the last threshold tick.
	targetOffset float64
	// ticks is the amount of ticks in which the controller had a target.
	ticks uint64
}

// HistorySize is the amount of ticks a Controller remembers the transform of its entity for.
const HistorySize = 100

// New returns a Controller for an entity with the transform passed, using the strategy passed. The controller
// has no target until SetTarget is called.
func New(t entity.Transform, s Strategy) *Controller {
	assert.IsTrue(s != nil, "lookat: controller created without a strategy")

	c := &Controller{
		strategy:    s,
		log:         nopLogger{},
		description: "Description",
		history:     entity.NewHistory(HistorySize),
	}
	c.SetTransform(t)
	return c
}

// Update runs a single tick of the controller. deltaTime is the time in seconds since the last tick and
// trigger reports whether the instant rotation trigger is currently held. Update does nothing if the
// controller has no target.
func (c *Controller) Update(deltaTime float64, trigger bool) {
	if !c.hasTarget {
		return
	}
	c.loc.Commit()

	switch s := c.strategy.(type) {
	case Standard:
		c.loc.Current.LookAt(c.target)
	case YAxisOnly:
		c.lookAtHorizontal()
	case Slerp:
		c.rotateWithSlerp(s, deltaTime)
	case Threshold:
		c.rotateWithinThreshold(s, deltaTime, trigger)
	case SmoothDampDirect:
		c.rotateWithSmoothDamp(s, deltaTime)
	default:
		assert.IsTrue(false, "lookat: unknown strategy %T", s)
	}
	c.ticks++
	c.history.Add(entity.HistoricalTransform{Transform: c.loc.Current, Tick: c.ticks})

	c.log.Debugf("lookat: tick=%d strategy=%s yaw=%.3f velocity=%.3f", c.ticks, c.strategy.Kind(), c.loc.Current.Yaw(), c.velocity)
}

// Strategy returns the current strategy of the controller.
func (c *Controller) Strategy() Strategy {
	return c.strategy
}

// SetStrategy changes the strategy of the controller. If the new strategy is of a different kind than the
// current one, the damping velocity is reset so that no momentum carries over. Changing only the parameters
// of the current strategy keeps it.
func (c *Controller) SetStrategy(s Strategy) {
	assert.IsTrue(s != nil, "lookat: strategy set to nil")
	if s.Kind() != c.strategy.Kind() {
		c.velocity = 0
	}
	c.strategy = s
}

// Target returns the position the controller faces, and false if it has no target.
func (c *Controller) Target() (mgl64.Vec3, bool) {
	return c.target, c.hasTarget
}

// SetTarget sets the world position the controller should face.
func (c *Controller) SetTarget(pos mgl64.Vec3) {
	c.target, c.hasTarget = pos, true
}

// ClearTarget removes the target of the controller, after which Update does nothing.
func (c *Controller) ClearTarget() {
	c.target, c.hasTarget = mgl64.Vec3{}, false
}

// OverrideReference returns the reference used for instant rotations, and false if the entity's own transform
// is used instead.
func (c *Controller) OverrideReference() (Reference, bool) {
	return c.override, c.hasOverride
}

// SetOverrideReference makes the threshold strategy measure its instant rotation from ref rather than from
// the entity itself.
func (c *Controller) SetOverrideReference(ref Reference) {
	c.override, c.hasOverride = ref, true
}

// ClearOverrideReference makes the threshold strategy use the entity's own transform again.
func (c *Controller) ClearOverrideReference() {
	c.override, c.hasOverride = Reference{}, false
}

// Transform returns the current transform of the entity.
func (c *Controller) Transform() entity.Transform {
	return c.loc.Current
}

// SetTransform teleports the entity to the transform passed. The transform before the last tick and the
// transforms remembered for Rewind are reset too.
func (c *Controller) SetTransform(t entity.Transform) {
	if t.Rotation.Len() == 0 {
		t.Rotation = mgl64.QuatIdent()
	}
	t.Rotation = t.Rotation.Normalize()
	c.loc = entity.NewLocation(t)
	c.history.Clear()
}

// SetPosition moves the entity to pos without changing its orientation.
func (c *Controller) SetPosition(pos mgl64.Vec3) {
	c.loc.Current.Position = pos
}

// Location returns the transform of the entity together with the transform it had before the last tick.
func (c *Controller) Location() entity.Location {
	return c.loc
}

// DampVelocity returns the angular velocity carried between ticks by the damping strategies, in degrees per
// second.
func (c *Controller) DampVelocity() float64 {
	return c.velocity
}

// ResetDampVelocity sets the damping velocity back to 0.
func (c *Controller) ResetDampVelocity() {
	c.velocity = 0
}

// Description returns the free-form description of the controller.
func (c *Controller) Description() string {
	return c.description
}

// SetDescription sets the free-form description of the controller.
func (c *Controller) SetDescription(description string) {
	c.description = description
}

// SetLogger sets the logger that receives the diagnostics of every tick. A nil logger disables them.
func (c *Controller) SetLogger(log Logger) {
	if log == nil {
		log = nopLogger{}
	}
	c.log = log
}

// SetThresholdAngle changes the dead zone of a threshold strategy, as done by dragging its handle in a scene
// view. Negative angles are stored as 0. It returns false and does nothing if the controller uses another
// strategy.
func (c *Controller) SetThresholdAngle(angle float64) bool {
	s, ok := c.strategy.(Threshold)
	if !ok {
		return false
	}
	s.Angle = max(0, angle)
	c.strategy = s
	return true
}

// Rewind returns the transform the entity had after the tick passed, counting from the first tick the
// controller had a target in. If that tick is no longer remembered, the closest one that is is returned.
// False is returned if no tick ran yet.
func (c *Controller) Rewind(tick uint64) (entity.Transform, bool) {
	t, ok := c.history.Closest(tick)
	return t.Transform, ok
}

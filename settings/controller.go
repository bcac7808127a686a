package settings

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/entity"
	"github.com/oomph-ac/lookat/lookat"
	"github.com/oomph-ac/lookat/oerror"
	"github.com/oomph-ac/lookat/omath"
)

// ControllerSettings describe a single lookat controller and the target it follows. Only the parameters of
// the selected strategy are read.
type ControllerSettings struct {
	Name        string
	Description string
	// Strategy is the name of the rotation strategy, as accepted by lookat.ParseKind.
	Strategy string

	// Speed is used by the slerp strategy.
	Speed float64
	// MaxRotationSpeed and MinTimeToReach are used by the threshold and smooth_damp_direct strategies.
	MaxRotationSpeed float64
	MinTimeToReach   float64
	// ThresholdAngle and InstantRotate are used by the threshold strategy.
	ThresholdAngle float64
	InstantRotate  bool

	// Position and Yaw are the initial transform of the entity.
	Position Vec
	Yaw      float64
	// Target is the position the entity faces, or the centre of the target's orbit.
	Target Vec
	Orbit  Orbit
	// Override is the reference the threshold strategy measures instant rotations from.
	Override Override
}

// Orbit makes a target circle around its position.
type Orbit struct {
	// Radius is the radius of the circle. A radius of 0 keeps the target still.
	Radius float64
	// Speed is the angular speed of the target in degrees per second.
	Speed float64
}

// Override is an alternate reference transform for instant rotations.
type Override struct {
	Enabled  bool
	Position Vec
	Yaw      float64
}

// Validate checks the strategy name and the parameters the strategy reads.
func (c ControllerSettings) Validate() error {
	k, err := lookat.ParseKind(c.Strategy)
	if err != nil {
		return err
	}
	if k == lookat.StrategyThreshold && c.ThresholdAngle < 0 {
		return oerror.New("threshold angle cannot be negative, got %v", c.ThresholdAngle)
	}
	return nil
}

// LookAtStrategy returns the lookat strategy the settings describe.
func (c ControllerSettings) LookAtStrategy() (lookat.Strategy, error) {
	k, err := lookat.ParseKind(c.Strategy)
	if err != nil {
		return nil, err
	}
	switch k {
	case lookat.StrategyYAxisOnly:
		return lookat.YAxisOnly{}, nil
	case lookat.StrategySlerp:
		return lookat.Slerp{Speed: c.Speed}, nil
	case lookat.StrategyThreshold:
		return lookat.Threshold{
			MaxRotationSpeed:       c.MaxRotationSpeed,
			MinTimeToReach:         c.MinTimeToReach,
			Angle:                  c.ThresholdAngle,
			InstantRotateOnTrigger: c.InstantRotate,
		}, nil
	case lookat.StrategySmoothDampDirect:
		return lookat.SmoothDampDirect{MaxRotationSpeed: c.MaxRotationSpeed, MinTimeToReach: c.MinTimeToReach}, nil
	default:
		return lookat.Standard{}, nil
	}
}

// NewController creates a controller at the initial transform of the settings and applies them to it.
func (c ControllerSettings) NewController() (*lookat.Controller, error) {
	s, err := c.LookAtStrategy()
	if err != nil {
		return nil, err
	}
	ctrl := lookat.New(entity.NewTransform(c.Position.Vec3(), c.Yaw, 0), s)
	if err := c.Apply(ctrl); err != nil {
		return nil, err
	}
	ctrl.SetTarget(c.TargetAt(0))
	return ctrl, nil
}

// Apply applies the strategy, description and override reference of the settings to an existing controller.
// The transform and target of the controller are left alone.
func (c ControllerSettings) Apply(ctrl *lookat.Controller) error {
	s, err := c.LookAtStrategy()
	if err != nil {
		return err
	}
	ctrl.SetStrategy(s)
	ctrl.SetDescription(c.Description)
	if c.Override.Enabled {
		ctrl.SetOverrideReference(lookat.Reference{
			Position: c.Override.Position.Vec3(),
			Forward:  omath.DirectionVector(c.Override.Yaw, 0),
		})
	} else {
		ctrl.ClearOverrideReference()
	}
	return nil
}

// TargetAt returns the position of the target after the amount of seconds passed.
func (c ControllerSettings) TargetAt(seconds float64) mgl64.Vec3 {
	centre := c.Target.Vec3()
	if c.Orbit.Radius == 0 {
		return centre
	}
	rad := mgl64.DegToRad(c.Orbit.Speed * seconds)
	return centre.Add(mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}.Mul(c.Orbit.Radius))
}

// Vec3 ...
func (v Vec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

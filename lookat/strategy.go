package lookat

import (
	"strings"

	"github.com/oomph-ac/lookat/oerror"
)

// Kind identifies the rotation strategy of a Controller.
type Kind uint8

const (
	// StrategyStandard points the forward axis straight at the target.
	StrategyStandard Kind = iota
	// StrategyYAxisOnly faces the target by turning around the vertical axis only.
	StrategyYAxisOnly
	// StrategySlerp eases the yaw towards the target with spherical interpolation.
	StrategySlerp
	// StrategyThreshold follows the target with a damped yaw once it leaves a dead zone.
	StrategyThreshold
	// StrategySmoothDampDirect damps the absolute yaw towards the target.
	StrategySmoothDampDirect
)

var kindNames = [...]string{
	StrategyStandard:         "standard",
	StrategyYAxisOnly:        "y_axis_only",
	StrategySlerp:            "slerp",
	StrategyThreshold:        "threshold",
	StrategySmoothDampDirect: "smooth_damp_direct",
}

// kindAliases maps the names used by older LookAt configurations to their Kind.
var kindAliases = map[string]Kind{
	"yaxisonly":    StrategyYAxisOnly,
	"rotwithslerp": StrategySlerp,
	"rotthreshold": StrategyThreshold,
	"rotwithsda":   StrategySmoothDampDirect,
}

// String ...
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the Kind with the name passed. Names are matched case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, oerror.New("unknown lookat strategy %q", name)
}

// Strategy is the rotation strategy of a Controller along with the parameters it needs. It is implemented by
// Standard, YAxisOnly, Slerp, Threshold and SmoothDampDirect.
type Strategy interface {
	Kind() Kind
	strategy()
}

// Standard rotates the entity every tick so that its forward axis points exactly at the target. Both pitch and
// yaw are affected.
type Standard struct{}

// YAxisOnly rotates the entity every tick so that it faces the target horizontally. The entity never pitches.
type YAxisOnly struct{}

// Slerp eases the yaw of the entity towards the target.
type Slerp struct {
	// Speed scales the interpolation fraction of each tick, which is deltaTime*Speed. The fraction is not
	// clamped, so a fraction above 1 rotates past the target.
	Speed float64
}

// Threshold turns the entity towards the target only once the target is more than Angle degrees away from
// its forward axis, and then only by the amount it is outside that dead zone.
type Threshold struct {
	// MaxRotationSpeed limits the damped rotation, in degrees per second.
	MaxRotationSpeed float64
	// MinTimeToReach is roughly the time in seconds the damped rotation takes to catch up.
	MinTimeToReach float64
	// Angle is the dead zone in degrees on either side of the forward axis. Negative values count as 0.
	Angle float64
	// InstantRotateOnTrigger makes the entity face the target immediately while the trigger is held.
	InstantRotateOnTrigger bool
}

// SmoothDampDirect damps the yaw of the entity towards the yaw that faces the target. Pitch and roll are
// reset to 0.
type SmoothDampDirect struct {
	// MaxRotationSpeed limits the damped rotation, in degrees per second.
	MaxRotationSpeed float64
	// MinTimeToReach is roughly the time in seconds the damped rotation takes to catch up.
	MinTimeToReach float64
}

func (Standard) Kind() Kind         { return StrategyStandard }
func (YAxisOnly) Kind() Kind        { return StrategyYAxisOnly }
func (Slerp) Kind() Kind            { return StrategySlerp }
func (Threshold) Kind() Kind        { return StrategyThreshold }
func (SmoothDampDirect) Kind() Kind { return StrategySmoothDampDirect }

func (Standard) strategy()         {}
func (YAxisOnly) strategy()        {}
func (Slerp) strategy()            {}
func (Threshold) strategy()        {}
func (SmoothDampDirect) strategy() {}

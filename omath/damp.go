package omath

import "math"

const (
	// MinSmoothTime is the smallest smooth time SmoothDamp works with. Shorter times are raised to it.
	MinSmoothTime = 1e-4
	// MinMaxSpeed is the smallest speed limit SmoothDamp works with. Lower limits are raised to it.
	MinMaxSpeed = 1e-4
)

// SmoothDamp gradually moves current towards target like a critically damped spring, reaching it in roughly
// smoothTime seconds. velocity carries the rate of change between calls and is updated in place. The distance
// covered is limited by maxSpeed, in units per second.
//
// SmoothDamp never steps past target. A deltaTime of zero or less returns current and leaves velocity untouched.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, deltaTime float64) float64 {
	if deltaTime <= 0 {
		return current
	}
	smoothTime = math.Max(MinSmoothTime, smoothTime)
	maxSpeed = math.Max(MinMaxSpeed, maxSpeed)

	omega := 2 / smoothTime
	x := omega * deltaTime
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTarget := target

	maxChange := maxSpeed * smoothTime
	change = math.Max(-maxChange, math.Min(change, maxChange))
	target = current - change

	temp := (*velocity + omega*change) * deltaTime
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (originalTarget-current > 0) == (output > originalTarget) {
		output = originalTarget
		*velocity = (output - originalTarget) / deltaTime
	}
	return output
}

// SmoothDampAngle is SmoothDamp for angles in degrees. The gap between current and target is wrapped to the
// shortest path around the circle before damping, so the result may lie outside [0, 360).
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, maxSpeed, deltaTime float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, maxSpeed, deltaTime)
}

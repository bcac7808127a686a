package omath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length under which a vector is considered to have no direction.
const Epsilon = 1e-9

var (
	// Up is the world up axis. Yaw is a rotation around it.
	Up = mgl64.Vec3{0, 1, 0}
	// Right is the local right axis of an unrotated transform.
	Right = mgl64.Vec3{1, 0, 0}
	// Forward is the local forward axis of an unrotated transform.
	Forward = mgl64.Vec3{0, 0, 1}
)

// Project returns the projection of v onto axis. A zero axis projects everything onto the origin.
func Project(v, axis mgl64.Vec3) mgl64.Vec3 {
	sqr := axis.Dot(axis)
	if sqr < Epsilon*Epsilon {
		return mgl64.Vec3{}
	}
	return axis.Mul(v.Dot(axis) / sqr)
}

// Angle returns the unsigned angle in degrees between a and b, in the range [0, 180].
func Angle(a, b mgl64.Vec3) float64 {
	denominator := math.Sqrt(a.Dot(a) * b.Dot(b))
	if denominator < 1e-15 {
		return 0
	}
	dot := mgl64.Clamp(a.Dot(b)/denominator, -1, 1)
	return mgl64.RadToDeg(math.Acos(dot))
}

// Repeat loops t so that it is never larger than length and never smaller than 0.
func Repeat(t, length float64) float64 {
	return mgl64.Clamp(t-math.Floor(t/length)*length, 0, length)
}

// DeltaAngle returns the shortest difference between two angles given in degrees. The result lies in
// the range (-180, 180].
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// Sign returns 1 when f is positive or zero, and -1 otherwise.
func Sign(f float64) float64 {
	if f >= 0 {
		return 1
	}
	return -1
}

// Flatten returns v with its vertical component removed.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// DirectionVector returns the forward direction of a transform with the given yaw and pitch in degrees.
// A positive yaw turns forward towards +X, a positive pitch tilts it downwards.
func DirectionVector(yaw, pitch float64) mgl64.Vec3 {
	yawRad, pitchRad := mgl64.DegToRad(yaw), mgl64.DegToRad(pitch)
	m := math.Cos(pitchRad)

	return mgl64.Vec3{
		m * math.Sin(yawRad),
		-math.Sin(pitchRad),
		m * math.Cos(yawRad),
	}
}

// Round will round a number to a given precision.
func Round(val float64, precision int) float64 {
	pwr := math.Pow10(precision)
	return math.Round(val*pwr) / pwr
}

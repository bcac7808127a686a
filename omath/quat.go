package omath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// gimbalLimit is the |sin(pitch)| above which yaw and roll can no longer be told apart.
const gimbalLimit = 0.9999999

// EulerToQuat returns the orientation described by the Euler angles passed, in degrees. Roll is applied around
// the Z axis first, then pitch around the X axis and finally yaw around the Y axis.
func EulerToQuat(pitch, yaw, roll float64) mgl64.Quat {
	qYaw := mgl64.QuatRotate(mgl64.DegToRad(yaw), Up)
	qPitch := mgl64.QuatRotate(mgl64.DegToRad(pitch), Right)
	qRoll := mgl64.QuatRotate(mgl64.DegToRad(roll), Forward)
	return qYaw.Mul(qPitch).Mul(qRoll).Normalize()
}

// QuatToEuler returns the Euler angles of q in degrees as {pitch, yaw, roll}, each in the range [0, 360).
// It is the inverse of EulerToQuat. When q points straight up or down, roll is reported as 0 and the whole
// rotation around the vertical is reported as yaw.
func QuatToEuler(q mgl64.Quat) mgl64.Vec3 {
	q = q.Normalize()
	right, up, forward := q.Rotate(Right), q.Rotate(Up), q.Rotate(Forward)

	sinPitch := mgl64.Clamp(-forward.Y(), -1, 1)
	pitch := math.Asin(sinPitch)

	var yaw, roll float64
	if math.Abs(sinPitch) < gimbalLimit {
		yaw = math.Atan2(forward.X(), forward.Z())
		roll = math.Atan2(right.Y(), up.Y())
	} else {
		yaw = math.Atan2(-right.Z(), right.X())
	}
	return mgl64.Vec3{
		Repeat(mgl64.RadToDeg(pitch), 360),
		Repeat(mgl64.RadToDeg(yaw), 360),
		Repeat(mgl64.RadToDeg(roll), 360),
	}
}

// Yaw returns the yaw of q in degrees, in the range [0, 360).
func Yaw(q mgl64.Quat) float64 {
	return QuatToEuler(q).Y()
}

// YawRotation returns a rotation of angle degrees around the up axis.
func YawRotation(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(angle), Up)
}

// LookRotation returns the orientation whose forward axis points along forward and whose up axis is as close
// to up as possible. A zero forward vector results in the identity rotation. If forward is parallel to up,
// the rotation keeps its right axis on +X.
func LookRotation(forward, up mgl64.Vec3) mgl64.Quat {
	if forward.Len() < Epsilon {
		return mgl64.QuatIdent()
	}
	f := forward.Normalize()

	r := up.Cross(f)
	if r.Len() < Epsilon {
		alt := mgl64.Vec3{0, 0, 1}
		if f.Dot(up) > 0 {
			alt = mgl64.Vec3{0, 0, -1}
		}
		if r = alt.Cross(f); r.Len() < Epsilon {
			r = Right
		}
	}
	r = r.Normalize()
	u := f.Cross(r)

	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(r, u, f).Mat4()).Normalize()
}

// Slerp spherically interpolates between a and b along the shortest path. t is not clamped: a value of 1
// returns b, values above 1 keep rotating past b and negative values rotate away from it.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	a, b = a.Normalize(), b.Normalize()

	dot := a.Dot(b)
	if dot < 0 {
		b, dot = b.Scale(-1), -dot
	}
	if dot > 0.9995 {
		return a.Add(b.Sub(a).Scale(t)).Normalize()
	}

	theta := math.Acos(mgl64.Clamp(dot, -1, 1))
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb)).Normalize()
}

// QuatAngle returns the angle in degrees of the smallest rotation that turns a into b.
func QuatAngle(a, b mgl64.Quat) float64 {
	dot := math.Min(math.Abs(a.Normalize().Dot(b.Normalize())), 1)
	return mgl64.RadToDeg(2 * math.Acos(dot))
}

// SameOrientation reports whether a and b describe orientations no more than threshold degrees apart.
func SameOrientation(a, b mgl64.Quat, threshold float64) bool {
	return QuatAngle(a, b) <= threshold
}

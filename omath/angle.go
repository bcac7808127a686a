package omath

import "github.com/go-gl/mathgl/mgl64"

// SignedAngleAroundAxis returns the angle in degrees between dirA and dirB around axis. Both directions are
// projected onto the plane orthogonal to the axis first. The angle is positive when turning from dirA to dirB
// is a positive rotation around axis, and negative otherwise.
//
// If either direction is parallel to the axis, the angle between them is undefined and 0 is returned.
func SignedAngleAroundAxis(dirA, dirB, axis mgl64.Vec3) float64 {
	if axis.Len() < Epsilon {
		return 0
	}
	dirA = dirA.Sub(Project(dirA, axis))
	dirB = dirB.Sub(Project(dirB, axis))
	if dirA.Len() < Epsilon || dirB.Len() < Epsilon {
		return 0
	}

	angle := Angle(dirA, dirB)
	if axis.Dot(dirA.Cross(dirB)) < 0 {
		return -angle
	}
	return angle
}

// YawTo returns the signed yaw in degrees a transform at pos facing forward has to turn to face target.
func YawTo(pos, forward, target mgl64.Vec3) float64 {
	return SignedAngleAroundAxis(forward, target.Sub(pos), Up)
}

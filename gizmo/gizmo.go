// Package gizmo builds the debug geometry a scene view draws for a look-at controller: the wire arc of
// the threshold dead zone, its label and a handle that can be dragged to resize it. Geometry is
// float32 since it is only ever handed to a renderer.
package gizmo

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/lookat"
)

// LabelHeight is how far above the entity the threshold label is drawn.
const LabelHeight = 1.5

// ThresholdArc returns the points of a wire arc of the given radius centred on the entity. The arc
// lies in the entity's horizontal plane and is symmetric about its forward vector, sweeping the
// threshold angle. Nil is returned for controllers that are not using the threshold strategy.
func ThresholdArc(state lookat.DebugState, radius float32, segments int) []mgl32.Vec3 {
	if !state.HasThreshold {
		return nil
	}
	if segments < 1 {
		segments = 1
	}

	center := vec32(state.Position)
	up := vec32(state.Up)
	forward := vec32(state.Forward)

	sweep := mgl32.DegToRad(float32(state.ThresholdAngle))
	start := -sweep / 2
	step := sweep / float32(segments)

	points := make([]mgl32.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		dir := rotateAround(forward, up, start+step*float32(i))
		points = append(points, center.Add(dir.Mul(radius)))
	}
	return points
}

// LabelAnchor returns the world position the threshold label is drawn at.
func LabelAnchor(state lookat.DebugState) mgl32.Vec3 {
	return vec32(state.Position).Add(vec32(state.Up).Mul(LabelHeight))
}

// Label returns the text drawn above a threshold controller.
func Label(state lookat.DebugState) string {
	return fmt.Sprintf("ThresholdAngle: %g", state.ThresholdAngle)
}

// rotateAround rotates v by rad radians around the unit axis k.
func rotateAround(v, k mgl32.Vec3, rad float32) mgl32.Vec3 {
	sin, cos := math32.Sincos(rad)
	return v.Mul(cos).Add(k.Cross(v).Mul(sin)).Add(k.Mul(k.Dot(v) * (1 - cos)))
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

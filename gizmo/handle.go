package gizmo

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/lookat/lookat"
)

// Handle is a draggable box placed in front of the entity that scales the threshold angle.
type Handle struct {
	Center mgl32.Vec3
	BBox   cube.BBox
}

// NewHandle places a handle of the given edge size distance units ahead of the entity.
func NewHandle(state lookat.DebugState, distance, size float32) Handle {
	center := vec32(state.Position).Add(vec32(state.Forward).Mul(distance))
	h := size / 2
	return Handle{
		Center: center,
		BBox:   cube.Box(-h, -h, -h, h, h, h).Translate(center),
	}
}

// Pick casts a ray from rayStart to rayEnd against the handle. It returns the distance from rayStart
// to the hit, and false if the ray misses.
func (h Handle) Pick(rayStart, rayEnd mgl32.Vec3) (float32, bool) {
	result, ok := trace.BBoxIntercept(h.BBox, rayStart, rayEnd)
	if !ok {
		return 0, false
	}
	return rayStart.Sub(result.Position()).Len(), true
}

// ScaleValue returns the threshold after dragging the handle by dragDelta. The result is never
// negative.
func ScaleValue(value, dragDelta, sensitivity float64) float64 {
	return max(value+dragDelta*sensitivity, 0)
}

package entity

import "github.com/go-gl/mathgl/mgl64"

// Location keeps the transform of an entity together with the transform it had before its last update.
type Location struct {
	// Current is the transform of the entity after the last update.
	Current Transform
	// Last is the transform the entity had right before Current was set.
	Last Transform
}

// NewLocation returns a Location that starts at t with no history.
func NewLocation(t Transform) Location {
	return Location{Current: t, Last: t}
}

// Commit stores the current transform as the last one. It is called once before every update.
func (l *Location) Commit() {
	l.Last = l.Current
}

// RotationDelta returns the rotation applied during the last update, so that Last.Rotation * delta equals
// Current.Rotation.
func (l Location) RotationDelta() mgl64.Quat {
	return l.Last.Rotation.Inverse().Mul(l.Current.Rotation)
}

// Package lookat rotates entities so that they face a target point. It is a more configurable version of a
// plain "look at": a Controller can face its target directly, turn around the vertical axis only, ease towards
// it with spherical interpolation, or follow it with a damped yaw that ignores small offsets.
//
// A Controller is driven by its host once per frame through Update. It reads no input devices and draws
// nothing; the host passes in whether the instant rotation trigger is held and reads DebugState to draw
// whatever debug shapes it wants.
package lookat

const (
	// Version is the version of the lookat controller.
	Version = "v0.1.0"
	// Extension is the name the controller is registered under in editor tooling.
	Extension = "LookAt"
)

// Logger receives per-tick diagnostics of a Controller. *logrus.Logger and *logrus.Entry satisfy it.
type Logger interface {
	Debugf(format string, args ...any)
}

// nopLogger is a no-op implementation of the Logger interface, used when no logger is set.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/lookat/internal"
	"github.com/pelletier/go-toml"
	"github.com/zeebo/xxh3"
)

// Settings contains everything a lookat host can be configured with: the simulation it runs and the
// controllers in it.
type Settings struct {
	Sim         SimSettings
	Controllers []ControllerSettings
}

// SimSettings configure the host loop that drives the controllers.
type SimSettings struct {
	// TickRate is the amount of ticks per second. Every tick advances the controllers by 1/TickRate seconds.
	TickRate float64
	// Ticks is the amount of ticks to run before exiting. 0 runs forever.
	Ticks int
	// TriggerEvery holds the instant rotation trigger down every TriggerEvery ticks. 0 never triggers it.
	TriggerEvery int
	// Debug enables debug logging of every controller tick.
	Debug bool
	// StatsView starts a runtime statistics viewer while the simulation runs.
	StatsView bool
}

// MaxTickRate is the highest tick rate a simulation can run at.
const MaxTickRate = 1000

// Vec is a position in the world.
type Vec struct {
	X, Y, Z float64
}

// DefaultSettings returns the default settings: one controller for every strategy, each following a target
// that circles around it.
func DefaultSettings() Settings {
	s := Settings{}
	s.Sim.TickRate = 60
	s.Sim.Ticks = 600

	orbit := Orbit{Radius: 8, Speed: 45}
	s.Controllers = []ControllerSettings{
		{Name: "standard", Description: "Faces the target directly.", Strategy: "standard", Target: Vec{Y: 2}, Orbit: orbit},
		{Name: "y_axis_only", Description: "Turns around the vertical axis only.", Strategy: "y_axis_only", Position: Vec{X: 20}, Target: Vec{X: 20, Y: 2}, Orbit: orbit},
		{Name: "slerp", Description: "Eases towards the target.", Strategy: "slerp", Speed: 4, Position: Vec{X: 40}, Target: Vec{X: 40}, Orbit: orbit},
		{Name: "threshold", Description: "Follows the target once it leaves the dead zone.", Strategy: "threshold", MaxRotationSpeed: 120, MinTimeToReach: 0.3, ThresholdAngle: 20, InstantRotate: true, Position: Vec{X: 60}, Target: Vec{X: 60}, Orbit: orbit},
		{Name: "smooth_damp_direct", Description: "Damps its yaw towards the target.", Strategy: "smooth_damp_direct", MaxRotationSpeed: 90, MinTimeToReach: 0.5, Position: Vec{X: 80}, Target: Vec{X: 80}, Orbit: orbit},
	}
	return s
}

// Validate checks the settings for values the host cannot run with.
func (s Settings) Validate() error {
	if !(s.Sim.TickRate > 0 && s.Sim.TickRate <= MaxTickRate) {
		return errorf("tick rate must be in (0, %v], got %v", MaxTickRate, s.Sim.TickRate)
	}
	if s.Sim.Ticks < 0 || s.Sim.TriggerEvery < 0 {
		return errorf("tick counts cannot be negative")
	}
	names := make(map[string]struct{}, len(s.Controllers))
	for i, c := range s.Controllers {
		if c.Name == "" {
			return errorf("controller #%d has no name", i)
		}
		if _, ok := names[c.Name]; ok {
			return errorf("duplicate controller name %q", c.Name)
		}
		names[c.Name] = struct{}{}

		if err := c.Validate(); err != nil {
			return fmt.Errorf("controller %q: %w", c.Name, err)
		}
	}
	return nil
}

// Encode encodes the settings passed to TOML.
func Encode(s Settings) ([]byte, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	if err := toml.NewEncoder(buf).Encode(s); err != nil {
		return nil, fmt.Errorf("failed encoding settings: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

// Decode decodes TOML settings and validates them. Missing simulation values are taken from DefaultSettings.
func Decode(data []byte) (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed decoding settings: %w", err)
	}
	if s.Sim.TickRate == 0 {
		s.Sim.TickRate = DefaultSettings().Sim.TickRate
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load loads the settings from the file at path. If the file does not exist yet, it is created with the
// default settings, which are then returned. The fingerprint of the file's contents is returned alongside.
func Load(path string) (Settings, uint64, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, 0, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, 0, fmt.Errorf("error reading settings: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return Settings{}, 0, err
	}
	return s, Fingerprint(data), nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errorf("settings file %s already exists", path)
	}
	data, err := Encode(DefaultSettings())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Fingerprint returns a hash of raw settings data, used to tell whether a settings file changed.
func Fingerprint(data []byte) uint64 {
	return xxh3.Hash(data)
}

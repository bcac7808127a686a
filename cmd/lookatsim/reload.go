package main

import (
	"os"
	"time"

	"github.com/oomph-ac/lookat/settings"
	"github.com/sirupsen/logrus"
)

// settingsReloader re-reads a settings file periodically and reports when its contents changed.
type settingsReloader struct {
	path        string
	fingerprint uint64
	every       time.Duration
	last        time.Time
}

// poll returns the new settings if the file changed since it was last read. Files that fail to load or
// validate are logged and ignored, keeping the previous settings in place.
func (r *settingsReloader) poll(log *logrus.Logger) (settings.Settings, bool) {
	if time.Since(r.last) < r.every {
		return settings.Settings{}, false
	}
	r.last = time.Now()

	data, err := os.ReadFile(r.path)
	if err != nil {
		log.Warnf("unable to read settings: %v", err)
		return settings.Settings{}, false
	}
	fingerprint := settings.Fingerprint(data)
	if fingerprint == r.fingerprint {
		return settings.Settings{}, false
	}
	r.fingerprint = fingerprint

	conf, err := settings.Decode(data)
	if err != nil {
		log.Warnf("unable to decode reloaded settings: %v", err)
		return settings.Settings{}, false
	}
	if err := conf.Validate(); err != nil {
		log.Warnf("reloaded settings are invalid: %v", err)
		return settings.Settings{}, false
	}
	return conf, true
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/lookat/lookat"
	"github.com/oomph-ac/lookat/settings"
	"github.com/sirupsen/logrus"
)

// The following program runs the controllers described by a settings file headlessly, moving every target
// along its orbit and reporting how closely each controller followed it.
func main() {
	var (
		configPath   = flag.String("config", "lookat.toml", "path to the settings file, created with defaults if missing")
		ticks        = flag.Int("ticks", -1, "amount of ticks to run, overriding the settings if not negative")
		triggerEvery = flag.Int("trigger-every", -1, "hold the instant rotate trigger every N ticks, overriding the settings if not negative")
		reload       = flag.Bool("reload", false, "re-read the settings file every second and apply changes")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: lookat.Version,
		}); err != nil {
			log.Fatalf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	conf, fingerprint, err := settings.Load(*configPath)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}
	if *ticks >= 0 {
		conf.Sim.Ticks = *ticks
	}
	if *triggerEvery >= 0 {
		conf.Sim.TriggerEvery = *triggerEvery
	}
	if conf.Sim.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if conf.Sim.StatsView {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:18066"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	s, err := newSim(conf, log)
	if err != nil {
		log.Fatalf("unable to create simulation: %v", err)
	}
	defer s.close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var reloader *settingsReloader
	if *reload {
		reloader = &settingsReloader{path: *configPath, fingerprint: fingerprint, every: time.Second}
	}

	log.Infof("running %d controllers at %v ticks per second", s.sched.Len(), conf.Sim.TickRate)
	s.run(ctx, reloader)
	s.report()
}

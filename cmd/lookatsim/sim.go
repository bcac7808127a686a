package main

import (
	"context"
	"math"
	"time"

	"github.com/oomph-ac/lookat/lookat"
	"github.com/oomph-ac/lookat/omath"
	"github.com/oomph-ac/lookat/scheduler"
	"github.com/oomph-ac/lookat/settings"
	"github.com/sirupsen/logrus"
)

// sim drives a scheduler of controllers along the targets described by the settings.
type sim struct {
	conf  settings.Settings
	log   *logrus.Logger
	sched *scheduler.Scheduler

	tick    int
	elapsed float64
	// yawErrors holds the absolute yaw each controller was away from its target after every tick.
	yawErrors map[string][]float64
}

func newSim(conf settings.Settings, log *logrus.Logger) (*sim, error) {
	s := &sim{
		log:       log,
		sched:     scheduler.New(0),
		yawErrors: make(map[string][]float64),
	}
	if err := s.apply(conf); err != nil {
		s.sched.Close()
		return nil, err
	}
	return s, nil
}

// apply brings the scheduler in line with conf. Controllers that already exist keep their transform and
// only have their strategy and description updated.
func (s *sim) apply(conf settings.Settings) error {
	known := make(map[string]struct{}, len(conf.Controllers))
	for _, cs := range conf.Controllers {
		known[cs.Name] = struct{}{}
		if c, ok := s.sched.Controller(cs.Name); ok {
			if err := cs.Apply(c); err != nil {
				return err
			}
			continue
		}

		c, err := cs.NewController()
		if err != nil {
			return err
		}
		if conf.Sim.Debug {
			c.SetLogger(s.log.WithField("controller", cs.Name))
		}
		if err := s.sched.Add(cs.Name, c); err != nil {
			return err
		}
	}
	for _, name := range s.sched.Names() {
		if _, ok := known[name]; !ok {
			s.sched.Remove(name)
			s.log.Infof("removed controller %s", name)
		}
	}
	s.conf = conf
	return nil
}

// run ticks the simulation at its tick rate until the configured amount of ticks ran or ctx is cancelled.
func (s *sim) run(ctx context.Context, reloader *settingsReloader) {
	interval := s.interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for s.conf.Sim.Ticks == 0 || s.tick < s.conf.Sim.Ticks {
		select {
		case <-ctx.Done():
			s.log.Info("interrupted")
			return
		case <-ticker.C:
		}

		if reloader != nil {
			if conf, ok := reloader.poll(s.log); ok {
				if err := s.apply(conf); err != nil {
					s.log.Errorf("unable to apply reloaded settings: %v", err)
				} else {
					s.log.Info("applied reloaded settings")
				}
				if next := s.interval(); next != interval {
					interval = next
					ticker.Reset(interval)
				}
			}
		}
		s.step()
	}
}

// interval returns the time between two ticks at the current tick rate.
func (s *sim) interval() time.Duration {
	return max(time.Duration(float64(time.Second)/s.conf.Sim.TickRate), time.Millisecond)
}

// step moves every target and advances all controllers by one tick.
func (s *sim) step() {
	dt := 1 / s.conf.Sim.TickRate
	s.elapsed += dt
	s.tick++

	for _, cs := range s.conf.Controllers {
		if c, ok := s.sched.Controller(cs.Name); ok {
			c.SetTarget(cs.TargetAt(s.elapsed))
		}
	}

	trigger := s.conf.Sim.TriggerEvery > 0 && s.tick%s.conf.Sim.TriggerEvery == 0
	s.sched.Tick(dt, trigger)

	for _, e := range s.sched.Snapshot() {
		if !e.State.HasTarget {
			continue
		}
		yawErr := math.Abs(omath.YawTo(e.State.Position, e.State.Forward, e.State.Target))
		s.yawErrors[e.Name] = append(s.yawErrors[e.Name], yawErr)
		s.log.Debugf("tick %d: %s yaw=%.2f delta=%.2f turn=%.2f error=%.2f", s.tick, e.Name, e.State.Yaw, e.State.YawDelta, e.State.TurnAngle, yawErr)
	}
}

// report logs how closely every controller followed its target.
func (s *sim) report() {
	for _, e := range s.sched.Snapshot() {
		errs := s.yawErrors[e.Name]
		if len(errs) == 0 {
			s.log.Infof("%s (%s): no ticks ran", e.Name, e.State.Kind)
			continue
		}
		fields := logrus.Fields{
			"strategy": e.State.Kind.String(),
			"ticks":    e.State.Ticks,
			"mean":     omath.Round(omath.Mean(errs), 3),
			"stddev":   omath.Round(omath.StandardDeviation(errs), 3),
			"max":      omath.Round(omath.MaxAbs(errs), 3),
		}
		if c, ok := s.sched.Controller(e.Name); ok {
			fields["description"] = c.Description()
		}
		if e.State.HasThreshold {
			fields["threshold"] = e.State.ThresholdAngle
		}
		s.log.WithFields(fields).Infof("%s yaw error", e.Name)
	}
}

func (s *sim) close() {
	s.sched.Close()
}

var _ lookat.Logger = (*logrus.Entry)(nil)

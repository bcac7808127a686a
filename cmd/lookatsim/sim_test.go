package main

import (
	"io"
	"testing"
	"time"

	"github.com/oomph-ac/lookat/settings"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSimFollowsTargets(t *testing.T) {
	conf := settings.DefaultSettings()
	s, err := newSim(conf, quietLogger())
	if err != nil {
		t.Fatalf("unable to create simulation: %v", err)
	}
	defer s.close()

	for _i := 0; _i < 300; _i++ {
		s.step()
	}

	for _, cs := range conf.Controllers {
		errs := s.yawErrors[cs.Name]
		if len(errs) != 300 {
			t.Fatalf("%s: expected 300 samples, got %d", cs.Name, len(errs))
		}
	}
	// Standard snaps onto the target every tick.
	for _, e := range s.yawErrors["standard"] {
		if e > 1e-3 {
			t.Fatalf("expected the standard controller to face its target every tick, got error %v", e)
		}
	}
}

func TestSimApply(t *testing.T) {
	conf := settings.DefaultSettings()
	s, err := newSim(conf, quietLogger())
	if err != nil {
		t.Fatalf("unable to create simulation: %v", err)
	}
	defer s.close()

	before, _ := s.sched.Controller("threshold")

	next := settings.DefaultSettings()
	next.Controllers = next.Controllers[3:]
	next.Controllers[0].ThresholdAngle = 45
	if err := s.apply(next); err != nil {
		t.Fatalf("unable to apply settings: %v", err)
	}

	if s.sched.Len() != 2 {
		t.Fatalf("expected 2 controllers after applying, got %d", s.sched.Len())
	}
	after, ok := s.sched.Controller("threshold")
	if !ok || after != before {
		t.Fatalf("expected the threshold controller to be kept")
	}
	if st := after.DebugState(); st.ThresholdAngle != 45 {
		t.Fatalf("expected threshold 45, got %v", st.ThresholdAngle)
	}
}

func TestSimInterval(t *testing.T) {
	conf := settings.DefaultSettings()
	s, err := newSim(conf, quietLogger())
	if err != nil {
		t.Fatalf("unable to create simulation: %v", err)
	}
	defer s.close()

	if got := s.interval(); got != time.Second/60 {
		t.Fatalf("expected an interval of %v, got %v", time.Second/60, got)
	}

	next := settings.DefaultSettings()
	next.Sim.TickRate = settings.MaxTickRate
	if err := s.apply(next); err != nil {
		t.Fatalf("unable to apply settings: %v", err)
	}
	if got := s.interval(); got != time.Millisecond {
		t.Fatalf("expected the interval to follow the new tick rate, got %v", got)
	}
}

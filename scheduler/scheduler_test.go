package scheduler

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/lookat/entity"
	"github.com/oomph-ac/lookat/lookat"
)

func newController(target mgl64.Vec3) *lookat.Controller {
	c := lookat.New(entity.NewTransform(mgl64.Vec3{}, 0, 0), lookat.SmoothDampDirect{MaxRotationSpeed: 90, MinTimeToReach: 0.5})
	c.SetTarget(target)
	return c
}

func TestSchedulerOrder(t *testing.T) {
	s := New(4)
	defer s.Close()

	names := []string{"zeta", "alpha", "mu", "beta"}
	for _, name := range names {
		if err := s.Add(name, newController(mgl64.Vec3{1, 0, 0})); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	if err := s.Add("alpha", newController(mgl64.Vec3{})); err == nil {
		t.Fatalf("expected an error when adding a duplicate name")
	}

	got := s.Names()
	for i := range names {
		if got[i] != names[i] {
			t.Fatalf("expected names in insertion order %v, got %v", names, got)
		}
	}

	if !s.Remove("mu") || s.Remove("mu") {
		t.Fatalf("expected mu to be removed exactly once")
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 controllers, got %d", s.Len())
	}
	if _, ok := s.Controller("mu"); ok {
		t.Fatalf("expected mu to be gone")
	}
}

func TestSchedulerTick(t *testing.T) {
	s := New(0)
	defer s.Close()

	const n = 64
	for i := 0; i < n; i++ {
		yaw := float64(i) * 5
		target := mgl64.Vec3{math.Sin(mgl64.DegToRad(yaw)), 0, math.Cos(mgl64.DegToRad(yaw))}
		if err := s.Add(fmt.Sprintf("c%d", i), newController(target)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	for _i := 0; _i < 10; _i++ {
		s.Tick(0.05, false)
	}

	entries := s.Snapshot()
	if len(entries) != n {
		t.Fatalf("expected %d entries, got %d", n, len(entries))
	}
	for i, e := range entries {
		if e.Name != fmt.Sprintf("c%d", i) {
			t.Fatalf("expected entry %d to be c%d, got %s", i, i, e.Name)
		}
		if e.State.Ticks != 10 {
			t.Fatalf("%s: expected 10 ticks, got %d", e.Name, e.State.Ticks)
		}
	}

	var visited int
	s.Each(func(name string, c *lookat.Controller) {
		visited++
		if c.DebugState().Ticks != 10 {
			t.Fatalf("%s: expected 10 ticks", name)
		}
	})
	if visited != n {
		t.Fatalf("expected to visit %d controllers, visited %d", n, visited)
	}
}

func TestSchedulerTickWithoutTargets(t *testing.T) {
	s := New(2)
	defer s.Close()

	c := newController(mgl64.Vec3{1, 0, 0})
	c.ClearTarget()
	if err := s.Add("idle", c); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Tick(0.05, true)
	if st := s.Snapshot()[0].State; st.Ticks != 0 || st.HasTarget {
		t.Fatalf("expected an idle controller to stay untouched, got %+v", st)
	}
}

func TestSchedulerEachCallsBack(t *testing.T) {
	s := New(2)
	defer s.Close()

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Add(name, newController(mgl64.Vec3{1, 0, 0})); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	var visited []string
	s.Each(func(name string, c *lookat.Controller) {
		visited = append(visited, name)
		if got, ok := s.Controller(name); !ok || got != c {
			t.Fatalf("expected to look up %s from within Each", name)
		}
		if len(s.Snapshot()) == 0 {
			t.Fatalf("expected a snapshot from within Each")
		}
		if name == "a" {
			s.Remove("c")
		}
	})
	if len(visited) != 3 {
		t.Fatalf("expected every controller present at the start to be visited, got %v", visited)
	}
	if s.Len() != 2 {
		t.Fatalf("expected c to be removed, got %d controllers", s.Len())
	}
}

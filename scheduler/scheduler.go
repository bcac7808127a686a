// Package scheduler ticks many lookat controllers at once. Controllers are independent of each other, so every
// tick updates them in parallel and only returns once all of them are done.
package scheduler

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/lookat/lookat"
	"github.com/oomph-ac/lookat/oerror"
	"github.com/oomph-ac/lookat/worker"
)

// Scheduler holds a set of named controllers in the order they were added.
type Scheduler struct {
	// mu is held for the whole of a tick, so that controllers are never added, removed or read while they are
	// being updated.
	mu          sync.Mutex
	controllers *orderedmap.OrderedMap[string, *lookat.Controller]
	pool        *worker.Pool
}

// Entry is the state of a single controller after a tick.
type Entry struct {
	Name  string
	State lookat.DebugState
}

// New returns a Scheduler that updates its controllers on the amount of workers passed. If workers is 0 or less,
// one worker per CPU is used.
func New(workers int) *Scheduler {
	return &Scheduler{
		controllers: orderedmap.NewOrderedMap[string, *lookat.Controller](),
		pool:        worker.New(workers),
	}
}

// Add adds a controller under the name passed. It returns an error if the name is already taken.
func (s *Scheduler) Add(name string, c *lookat.Controller) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.controllers.Get(name); ok {
		return oerror.New("scheduler: controller %q already exists", name)
	}
	s.controllers.Set(name, c)
	return nil
}

// Remove removes the controller with the name passed and reports whether it existed.
func (s *Scheduler) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controllers.Delete(name)
}

// Controller returns the controller with the name passed.
func (s *Scheduler) Controller(name string) (*lookat.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controllers.Get(name)
}

// Names returns the names of all controllers in the order they were added.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controllers.Keys()
}

// Len returns the amount of controllers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controllers.Len()
}

// Each calls f for every controller in the order they were added. f is called without the scheduler locked,
// so it may call back into the scheduler. Controllers added or removed from within f do not change which
// controllers f is called for.
func (s *Scheduler) Each(f func(name string, c *lookat.Controller)) {
	s.mu.Lock()
	names := s.controllers.Keys()
	controllers := make([]*lookat.Controller, len(names))
	for i, name := range names {
		controllers[i], _ = s.controllers.Get(name)
	}
	s.mu.Unlock()

	for i, name := range names {
		f(name, controllers[i])
	}
}

// Tick updates every controller once with the delta time and trigger state passed, and waits for all of them
// to finish.
func (s *Scheduler) Tick(deltaTime float64, trigger bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var wg sync.WaitGroup
	for _, name := range s.controllers.Keys() {
		c, _ := s.controllers.Get(name)
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			c.Update(deltaTime, trigger)
		})
	}
	wg.Wait()
}

// Snapshot returns the debug state of every controller in the order they were added. Since Tick only returns
// once all controllers are updated, a snapshot never shows a tick halfway through.
func (s *Scheduler) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, s.controllers.Len())
	for _, name := range s.controllers.Keys() {
		c, _ := s.controllers.Get(name)
		entries = append(entries, Entry{Name: name, State: c.DebugState()})
	}
	return entries
}

// Close stops the workers of the scheduler. The scheduler must not be ticked afterwards.
func (s *Scheduler) Close() {
	s.pool.Close()
}

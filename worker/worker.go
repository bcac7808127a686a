package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs submitted functions on a fixed amount of goroutines. A panicking function is reported to sentry
// and does not take its worker down with it.
type Pool struct {
	queue chan func()
	once  sync.Once
}

// New starts a Pool with n workers. If n is 0 or less, one worker per CPU is started.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for f := range p.queue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to be run by one of the workers. It blocks while all workers are busy and the queue is full.
// Submit must not be called after Close.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Close stops the workers once all queued functions have run.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
}

package store

import "sync"

// CascadeRunner applies deferred cross-entity updates on a single worker
// goroutine. Cascades run in the order they were scheduled (FIFO), so counters
// converge even though a read between Enqueue and the job running can observe
// stale values. Drain closes that window for callers that need it.
type CascadeRunner struct {
	mu      sync.Mutex
	jobs    chan func()
	wg      sync.WaitGroup
	stopped bool
}

// NewCascadeRunner starts the worker goroutine.
func NewCascadeRunner() *CascadeRunner {
	r := &CascadeRunner{jobs: make(chan func(), 64)}
	go r.run()
	return r
}

func (r *CascadeRunner) run() {
	for job := range r.jobs {
		job()
		r.wg.Done()
	}
}

// Enqueue schedules fn behind every previously scheduled cascade. A nil or
// stopped runner runs fn inline, which keeps the stores usable without a
// background worker (tests, or fully synchronous deployments).
func (r *CascadeRunner) Enqueue(fn func()) {
	if r == nil {
		fn()
		return
	}
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		fn()
		return
	}
	r.wg.Add(1)
	r.jobs <- fn
	r.mu.Unlock()
}

// Drain blocks until every cascade scheduled so far has been applied.
func (r *CascadeRunner) Drain() {
	if r == nil {
		return
	}
	r.wg.Wait()
}

// Stop applies all outstanding cascades and switches the runner to inline
// mode. Safe to call more than once.
func (r *CascadeRunner) Stop() {
	if r == nil {
		return
	}
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()
	r.wg.Wait()
	close(r.jobs)
}

package threadpool

import "sync"

// Pool is a fixed-size worker pool implementing runtime.Pool.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	threads int
}

// NewPool starts a pool with the given number of workers (minimum one).
func NewPool(threads int) *Pool {
	if threads < 1 {
		threads = 1
	}

	p := &Pool{
		tasks:   make(chan func(), threads),
		threads: threads,
	}

	p.wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer p.wg.Done()
			for fn := range p.tasks {
				fn()
			}
		}()
	}

	return p
}

// Schedule enqueues fn onto a worker. Once the pool is closed, fn runs
// inline on the calling goroutine so in-flight callers never stall.
func (p *Pool) Schedule(fn func()) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn()
		return
	}

	p.tasks <- fn
	p.mu.RUnlock()
}

// NumThreads returns the pool's worker count.
func (p *Pool) NumThreads() int {
	return p.threads
}

// Close stops accepting work and waits for queued tasks to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

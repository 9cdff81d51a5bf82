package runtime

// Pool schedules closures onto a fixed set of worker threads.
type Pool interface {
	// Schedule enqueues fn for execution on one of the pool's workers.
	Schedule(fn func())

	// NumThreads returns the pool's worker count.
	NumThreads() int
}

// ThreadPoolOptions names the pools a runtime call may fan work out onto.
// The zero value leaves both choices to the runtime's defaults.
type ThreadPoolOptions struct {
	InterOp Pool
	IntraOp Pool
}

// ThreadPoolFactory supplies the current pool set for a call. The returned
// pools may change between calls, so callers must query per call rather than
// cache. Implementations must be safe for concurrent queries.
type ThreadPoolFactory interface {
	GetThreadPools() ThreadPoolOptions
}

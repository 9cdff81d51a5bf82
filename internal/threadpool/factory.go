package threadpool

import (
	"log/slog"
	"sync"

	"github.com/vineetp6/serving/internal/runtime"
)

// StaticFactory hands out the same pool set on every query.
type StaticFactory struct {
	opts runtime.ThreadPoolOptions
}

// NewStaticFactory creates a factory that always returns opts.
func NewStaticFactory(opts runtime.ThreadPoolOptions) *StaticFactory {
	return &StaticFactory{opts: opts}
}

// GetThreadPools returns the fixed pool set.
func (f *StaticFactory) GetThreadPools() runtime.ThreadPoolOptions {
	return f.opts
}

// DynamicFactory hands out the current pool set and supports live resizing,
// so servables that query per call pick up reconfigured pools.
type DynamicFactory struct {
	mu      sync.RWMutex
	interOp *Pool
	intraOp *Pool
}

// NewDynamicFactory creates a factory with the given pool sizes. A size of
// zero leaves that slot empty, deferring to the runtime's defaults.
func NewDynamicFactory(interOpThreads, intraOpThreads int) *DynamicFactory {
	f := &DynamicFactory{}
	f.interOp = buildPool(interOpThreads)
	f.intraOp = buildPool(intraOpThreads)
	return f
}

// GetThreadPools returns the current pool set.
func (f *DynamicFactory) GetThreadPools() runtime.ThreadPoolOptions {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return poolOptions(f.interOp, f.intraOp)
}

// Resize swaps in pools of the new sizes and retires the old ones. Calls
// already holding the old pools finish on them; retired pools run any late
// work inline.
func (f *DynamicFactory) Resize(interOpThreads, intraOpThreads int) {
	f.mu.Lock()
	oldInter, oldIntra := f.interOp, f.intraOp
	f.interOp = buildPool(interOpThreads)
	f.intraOp = buildPool(intraOpThreads)
	f.mu.Unlock()

	if oldInter != nil {
		oldInter.Close()
	}
	if oldIntra != nil {
		oldIntra.Close()
	}

	slog.Info("Thread pools resized", "inter_op_threads", interOpThreads, "intra_op_threads", intraOpThreads)
}

// Close retires both pools.
func (f *DynamicFactory) Close() {
	f.mu.Lock()
	oldInter, oldIntra := f.interOp, f.intraOp
	f.interOp, f.intraOp = nil, nil
	f.mu.Unlock()

	if oldInter != nil {
		oldInter.Close()
	}
	if oldIntra != nil {
		oldIntra.Close()
	}
}

func buildPool(threads int) *Pool {
	if threads <= 0 {
		return nil
	}
	return NewPool(threads)
}

func poolOptions(interOp, intraOp *Pool) runtime.ThreadPoolOptions {
	var opts runtime.ThreadPoolOptions
	if interOp != nil {
		opts.InterOp = interOp
	}
	if intraOp != nil {
		opts.IntraOp = intraOp
	}
	return opts
}

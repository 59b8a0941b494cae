package deferred

import (
	"context"

	"github.com/ygrebnov/workers"
)

// PoolExecutor is a concurrent Executor backed by
// [github.com/ygrebnov/workers], suitable for CPU- or IO-bound callback
// fan-out where FIFO ordering between submissions is not required.
type PoolExecutor struct {
	pool workers.Workers[struct{}]
	ctx  context.Context
}

// PoolOption configures a PoolExecutor.
type PoolOption func(*poolConfig)

type poolConfig struct {
	fixedSize uint
	buffer    uint
}

// WithFixedWorkers caps the pool at n concurrently executing goroutines
// instead of the default dynamically-sized pool.
func WithFixedWorkers(n uint) PoolOption {
	return func(c *poolConfig) { c.fixedSize = n }
}

// WithTaskBuffer sets the size of the pool's internal task queue.
func WithTaskBuffer(n uint) PoolOption {
	return func(c *poolConfig) { c.buffer = n }
}

// NewPoolExecutor starts a PoolExecutor. ctx governs the pool's lifetime;
// cancelling it stops accepting new work and abandons queued closures.
func NewPoolExecutor(ctx context.Context, opts ...PoolOption) *PoolExecutor {
	cfg := poolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	workerOpts := []workers.Option{workers.WithStartImmediately()}
	if cfg.fixedSize > 0 {
		workerOpts = append(workerOpts, workers.WithFixedPool(cfg.fixedSize))
	} else {
		workerOpts = append(workerOpts, workers.WithDynamicPool())
	}
	if cfg.buffer > 0 {
		workerOpts = append(workerOpts, workers.WithTasksBuffer(cfg.buffer))
	}

	return &PoolExecutor{
		pool: workers.NewOptions[struct{}](ctx, workerOpts...),
		ctx:  ctx,
	}
}

// Submit dispatches fn to the pool. If the pool has been shut down or its
// context cancelled, fn is dropped; Submit never blocks the caller on fn's
// completion.
func (p *PoolExecutor) Submit(fn func()) {
	_ = p.pool.AddTask(func(context.Context) error {
		fn()
		return nil
	})
}

// SubmitCancellable dispatches work to the pool, skipping it if already
// cancelled by the time a worker picks it up.
func (p *PoolExecutor) SubmitCancellable(work CancellableWork) {
	_ = p.pool.AddTask(func(context.Context) error {
		if work.IsCancelled != nil && work.IsCancelled() {
			return nil
		}
		work.Fn()
		return nil
	})
}

var (
	_ Executor            = (*PoolExecutor)(nil)
	_ CancellableExecutor = (*PoolExecutor)(nil)
)

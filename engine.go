package graphblas

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// Engine owns the process-wide shared resources: a matrix queue, a
// Sauna pool, and global configuration guarded by a critical section.
// There is no global state in this package: callers construct an
// Engine and pass it to every operation.
type Engine struct {
	mu      sync.Mutex
	queue   []deferredEntry
	saunas  *saunaPool
	threads int
	logger  *slog.Logger

	defaultHyperRatio float64
}

// deferredEntry is an opaque handle on the process-wide queue of matrices
// with deferred work.
type deferredEntry struct {
	wait func() error
}

// Option configures an Engine at construction time using idiomatic Go
// functional options in place of a bit-collection descriptor.
type Option func(*Engine)

// WithThreads sets the worker-pool size used by internally-parallel
// operations (eWise, MxM). A value <= 0 means a single worker (see
// numWorkers).
func WithThreads(n int) Option {
	return func(e *Engine) { e.threads = n }
}

// WithHyperRatio records a default hyper ratio theta on the engine. No
// constructor in this package reads it: NewMatrix and Build give every
// matrix the package default of 1/16.
func WithHyperRatio(theta float64) Option {
	return func(e *Engine) { e.defaultHyperRatio = theta }
}

// WithLogger attaches a structured logger to the Engine. The logger is
// stored and returned by log(); no operation in this package writes to
// it.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine constructs an Engine with the given options applied over
// sensible defaults.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		threads:           0,
		defaultHyperRatio: defaultHyperRatio,
		logger:            slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	e.saunas = newSaunaPool()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// log returns a usable logger (never nil) for internal diagnostics.
func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}

// enqueue registers a matrix's deferred-work flush function on the
// engine's process-wide queue.
func (e *Engine) enqueue(wait func() error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue = append(e.queue, deferredEntry{wait: wait})
}

// WaitAll flushes every matrix currently on the engine's deferred-work
// queue.
func (e *Engine) WaitAll(ctx context.Context) error {
	e.mu.Lock()
	pending := e.queue
	e.queue = nil
	e.mu.Unlock()

	for _, entry := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := entry.wait(); err != nil {
			return err
		}
	}
	return nil
}

// numWorkers returns the worker-pool size to use, defaulting to a single
// worker when unset (tests and small matrices do not need parallelism to
// be correct -- only to be fast).
func (e *Engine) numWorkers() int {
	if e.threads > 0 {
		return e.threads
	}
	return 1
}

// Package dispatch runs storage work on an explicit execution context.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	appErrors "locationreminder/internal/pkg/errors"
)

// Dispatcher executes fn and returns its error. Implementations decide on
// which goroutine fn runs; callers always block until fn has finished or ctx
// is done.
type Dispatcher interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Immediate runs work synchronously on the calling goroutine. Tests use it
// for deterministic ordering.
type Immediate struct{}

// NewImmediate creates an Immediate dispatcher.
func NewImmediate() Immediate {
	return Immediate{}
}

func (Immediate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

// Pool runs work on background goroutines, at most size at a time.
type Pool struct {
	sem    *semaphore.Weighted
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewPool creates a Pool with size concurrent workers.
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dispatch pool size must be positive, got %d", size)
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}, nil
}

// Do waits for a free worker, runs fn on it and waits for the result.
// If ctx ends first, Do returns ctx.Err(); fn keeps running with a context
// that is cancelled as well, so it should observe ctx to stop early.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return appErrors.ErrDispatcherClosed
	}
	p.wg.Add(1)
	p.mu.RUnlock()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.wg.Done()
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return settle(done, ctx.Err())
	}
}

// settle prefers a result that is already available over the context error,
// so work that finished as ctx expired is not reported as failed.
func settle(done <-chan error, ctxErr error) error {
	select {
	case err := <-done:
		return err
	default:
		return ctxErr
	}
}

// Close rejects new work and waits for running work to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}

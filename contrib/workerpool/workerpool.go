// Copyright 2025 go-faddeeva Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index-range loops on a fixed set of goroutines.
// A Pool is created once and shared by every batch evaluation, so a grid of
// Faddeeva evaluations does not pay for goroutine start-up per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelForContext(ctx, len(in), 256, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = faddeeva.W(in[i])
//	    }
//	})
//
// Close must not be called while a loop is still running on the pool.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS. The workers live until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work drains. It is safe to call more
// than once. Loops started after Close run on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run hands body to the first workers goroutines and waits for all of them.
func (p *Pool) run(workers int, body func()) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: body, barrier: &wg}
	}
	wg.Wait()
}

// sequential reports whether a loop of the given width should run inline.
func (p *Pool) sequential(workers int) bool {
	return workers <= 1 || p.closed.Load()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each. It blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if p.sequential(workers) {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.run(workers, func() {
		start := int(next.Add(1)-1) * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers taking
// one index at a time. Use it when the cost per index varies a lot.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched calls fn(start, end) on consecutive batches of
// batchSize indices, which workers take from a shared counter until [0, n)
// is exhausted.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	_ = p.ParallelForContext(context.Background(), n, batchSize, fn)
}

// ParallelForContext is ParallelForAtomicBatched with cancellation: once ctx
// is done no further batches start, and it returns ctx.Err(). Batches already
// running are finished first. A nil error means every index was visited.
func (p *Pool) ParallelForContext(ctx context.Context, n, batchSize int, fn func(start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	var next atomic.Int64
	var stopped atomic.Bool
	body := func() {
		for {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			if ctx.Err() != nil {
				stopped.Store(true)
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}

	if p.sequential(workers) {
		body()
	} else {
		p.run(workers, body)
	}
	if stopped.Load() {
		return ctx.Err()
	}
	return nil
}

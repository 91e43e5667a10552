// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	const items = 100
	var count atomic.Int32
	work := make([]func(), items)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}

	pool.ExecuteAll(work)

	if got := count.Load(); got != items {
		t.Errorf("executed %d items, want %d", got, items)
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil) // must return immediately
}

func TestWorkerPool_Submit(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var wg sync.WaitGroup
	var count atomic.Int32
	for range 10 {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			count.Add(1)
		})
	}
	wg.Wait()

	if got := count.Load(); got != 10 {
		t.Errorf("executed %d items, want 10", got)
	}

	pool.Submit(nil) // must not panic
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if pool.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", pool.Workers())
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)

	if !pool.IsRunning() {
		t.Error("pool should be running after creation")
	}

	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestWorkerPool_NoWorkAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	executed := false
	pool.Submit(func() { executed = true })
	pool.ExecuteAll([]func(){func() { executed = true }})

	if executed {
		t.Error("closed pool must not execute work")
	}
}

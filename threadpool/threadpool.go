// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package threadpool provides a fixed pool of worker goroutines draining a
// shared task queue, together with strands that serialize task execution on
// top of the pool. It is the concurrency substrate for components that need
// ordered or mutually exclusive handlers without managing goroutines
// themselves.
package threadpool

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrStopped is returned when a task is submitted to a pool that has been
// stopped or is shutting down.
var ErrStopped = errors.New("threadpool is stopped")

// Pool is a fixed set of worker goroutines executing submitted tasks. Tasks
// are picked up in submission order but run concurrently, so no ordering is
// guaranteed between them. Use a Strand for ordering guarantees.
type Pool struct {
	mtx     sync.Mutex
	cond    *sync.Cond
	queue   []func()
	closing bool // no new tasks, drain the queue
	stopped bool // no new tasks, drop the queue
	wg      sync.WaitGroup
}

// New creates a pool with numWorkers worker goroutines. It panics if
// numWorkers is not positive, since a pool without workers can never run a
// task.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		panic("threadpool.New called with a non-positive worker count")
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mtx)
	for i := 0; i < numWorkers; i++ {
		p.Spawn()
	}
	return p
}

// Spawn adds one worker goroutine to the pool.
func (p *Pool) Spawn() {
	p.wg.Add(1)
	spawn(p.worker)
}

// worker runs queued tasks until the pool stops accepting work and has
// nothing left to hand out.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		task, ok := p.next()
		if !ok {
			return
		}
		task()
	}
}

// next blocks until a task is available or the pool is done. The second
// return value is false once the worker should exit.
func (p *Pool) next() (func(), bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	for {
		if p.stopped {
			return nil, false
		}
		if len(p.queue) > 0 {
			task := p.queue[0]
			p.queue = p.queue[1:]
			return task, true
		}
		if p.closing {
			return nil, false
		}
		p.cond.Wait()
	}
}

// Submit queues a task for execution on some worker. It never blocks on the
// workers. Returns ErrStopped if the pool no longer accepts tasks.
func (p *Pool) Submit(task func()) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.closing || p.stopped {
		return ErrStopped
	}
	p.queue = append(p.queue, task)
	p.cond.Signal()
	return nil
}

// ShutdownWait stops accepting new tasks, lets the workers drain every task
// already queued, and blocks until they have all exited.
func (p *Pool) ShutdownWait() {
	p.mtx.Lock()
	p.closing = true
	p.cond.Broadcast()
	p.mtx.Unlock()
	p.wg.Wait()
}

// Stop stops accepting new tasks, drops every task still queued, and blocks
// until the workers have finished their current task and exited.
func (p *Pool) Stop() {
	p.mtx.Lock()
	dropped := len(p.queue)
	p.queue = nil
	p.stopped = true
	p.cond.Broadcast()
	p.mtx.Unlock()
	if dropped > 0 {
		log.Debugf("Dropping %d queued tasks", dropped)
	}
	p.wg.Wait()
}

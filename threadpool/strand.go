// Copyright (c) 2024 The Crux developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package threadpool

import "sync"

// Strand serializes task execution on top of a Pool: no two tasks submitted
// through the same strand ever run concurrently. Tasks submitted through
// Queue additionally run in submission order. A strand does not own a
// goroutine; it borrows a pool worker only while it has tasks pending.
type Strand struct {
	pool    *Pool
	mtx     sync.Mutex
	tasks   []func()
	running bool
}

// NewStrand creates a strand executing its tasks on the given pool.
func NewStrand(pool *Pool) *Strand {
	return &Strand{pool: pool}
}

// Queue submits a task with both mutual exclusion and ordering: tasks queued
// through the same strand run one at a time, in the order they were queued.
// Returns ErrStopped if the underlying pool no longer accepts tasks.
func (s *Strand) Queue(task func()) error {
	return s.enqueue(task)
}

// Submit submits a task with mutual exclusion relative to every other task
// on this strand. Unlike Queue, callers must not rely on the order in which
// independently submitted tasks run. Returns ErrStopped if the underlying
// pool no longer accepts tasks.
func (s *Strand) Submit(task func()) error {
	return s.enqueue(task)
}

// Wrap returns a function that, when called, submits task to the strand with
// the same guarantees as Submit. Handy for handing ordinary callbacks to
// code that is unaware of strands. Submission errors after pool shutdown are
// dropped.
func (s *Strand) Wrap(task func()) func() {
	return func() {
		_ = s.Submit(task)
	}
}

// enqueue appends the task to the strand's queue and schedules a drain on
// the pool if one is not already running or queued.
func (s *Strand) enqueue(task func()) error {
	s.mtx.Lock()
	s.tasks = append(s.tasks, task)
	shouldSchedule := !s.running
	if shouldSchedule {
		s.running = true
	}
	s.mtx.Unlock()

	if !shouldSchedule {
		return nil
	}
	err := s.pool.Submit(s.drain)
	if err != nil {
		s.mtx.Lock()
		s.running = false
		s.tasks = nil
		s.mtx.Unlock()
		return err
	}
	return nil
}

// drain runs the strand's queued tasks one at a time, on the single pool
// worker that picked it up, until the queue is empty.
func (s *Strand) drain() {
	for {
		s.mtx.Lock()
		if len(s.tasks) == 0 {
			s.running = false
			s.mtx.Unlock()
			return
		}
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.mtx.Unlock()

		task()
	}
}

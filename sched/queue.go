// Package sched moves world-mutating actions off UI callbacks and onto the
// goroutine that owns the simulation state.
//
// Usage:
//  1. UI code holds a Scheduler and calls Schedule(action)
//  2. The owner loop calls Drain once per tick
//  3. Actions run in FIFO order on the owner goroutine
package sched

import (
	"fmt"
	"log/slog"
	"sync"
)

// Scheduler accepts actions to run later on the owner goroutine.
// Schedule is fire-and-forget: there is no result and no acknowledgment.
type Scheduler interface {
	Schedule(action func())
}

var _ Scheduler = (*Queue)(nil)

// Queue is a Scheduler drained explicitly by its owner.
// Schedule is safe for concurrent use; Drain must only be called by the owner.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	spare   []func()
	logger  *slog.Logger
}

// NewQueue creates an empty queue. A nil logger uses slog.Default.
func NewQueue(logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{logger: logger}
}

// Schedule appends action to the queue. Nil actions are dropped.
func (q *Queue) Schedule(action func()) {
	if action == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, action)
	q.mu.Unlock()
}

// Drain runs every action scheduled before the call and returns how many ran.
// Actions scheduled while draining run on the next Drain. A panicking action
// is logged and does not stop the rest.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.mu.Unlock()

	for i, action := range batch {
		q.run(action)
		batch[i] = nil
	}

	q.mu.Lock()
	q.spare = batch[:0]
	q.mu.Unlock()
	return len(batch)
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *Queue) run(action func()) {
	defer func() {
		if rec := recover(); rec != nil {
			q.logger.Error("scheduled action failed", "panic", fmt.Sprint(rec))
		}
	}()
	action()
}

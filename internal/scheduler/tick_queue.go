package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickQueue hands work to the goroutine that owns game state. Tasks deferred
// with Defer run on the next call to Tick, never inside Defer itself, so code
// handling an event can schedule an inventory change without mutating state
// the event is still reading.
type TickQueue struct {
	mu      sync.Mutex
	pending []func()
	ticks   uint64
	closed  bool
	log     *slog.Logger
}

// NewTickQueue creates an empty queue
func NewTickQueue() *TickQueue {
	return &TickQueue{log: slog.Default()}
}

// Defer queues a task for the next tick. It returns false, leaving the task
// unqueued, when task is nil or the queue has been closed.
func (q *TickQueue) Defer(task func()) bool {
	if task == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.pending = append(q.pending, task)
	return true
}

// Close stops the queue accepting tasks and runs the ones already queued.
// Tasks they defer are refused. It returns how many tasks ran.
func (q *TickQueue) Close() int {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0
	}
	q.closed = true
	q.mu.Unlock()
	return q.Tick()
}

// Tick runs every task queued before this call, in order, and returns how
// many ran. Tasks deferred while the tick runs wait for the following tick.
func (q *TickQueue) Tick() int {
	q.mu.Lock()
	tasks := q.pending
	q.pending = nil
	q.ticks++
	tick := q.ticks
	q.mu.Unlock()

	for _, task := range tasks {
		q.run(tick, task)
	}
	return len(tasks)
}

func (q *TickQueue) run(tick uint64, task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.log.Error(LogMsgTickTaskPanicked, "tick", tick, "panic", r)
		}
	}()
	task()
}

// Pending returns the number of tasks waiting for the next tick
func (q *TickQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Ticks returns how many ticks have elapsed
func (q *TickQueue) Ticks() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ticks
}

// Run ticks the queue every TickDuration until ctx is cancelled, then closes
// it so pending tasks still run. The calling goroutine becomes the owner of
// the state the tasks touch.
func (q *TickQueue) Run(ctx context.Context) {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			q.Tick()
		case <-ctx.Done():
			if n := q.Close(); n > 0 {
				q.log.Debug(LogMsgTickQueueDrained, "tasks", n)
			}
			return
		}
	}
}

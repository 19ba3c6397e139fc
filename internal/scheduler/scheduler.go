package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/worker"
)

// TickDuration is the length of one host server tick
const TickDuration = time.Second / domain.TicksPerSecond

// Ticks converts a number of server ticks into a duration
func Ticks(n int) time.Duration {
	return time.Duration(n) * TickDuration
}

// Scheduler runs jobs asynchronously on a worker pool, either once or at a
// fixed interval.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	mu    sync.Mutex
	tasks map[uuid.UUID]chan struct{}
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
		tasks:      make(map[uuid.UUID]chan struct{}),
	}
}

// RunAsync hands a job to the worker pool right away. It never blocks and
// returns false when the pool queue is full or stopped.
func (s *Scheduler) RunAsync(job worker.Job) bool {
	return s.workerPool.TryEnqueue(job)
}

// Schedule registers a job to run at a fixed interval, first run one interval from now
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) uuid.UUID {
	return s.ScheduleAfter(interval, interval, job)
}

// ScheduleAfter registers a job that first runs after delay and then every
// interval. The returned id can be passed to Cancel.
func (s *Scheduler) ScheduleAfter(delay, interval time.Duration, job worker.Job) uuid.UUID {
	id := uuid.New()
	cancel := make(chan struct{})

	s.mu.Lock()
	s.tasks[id] = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.forget(id)

		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			s.workerPool.Enqueue(job)
		case <-cancel:
			return
		case <-s.quit:
			return
		}

		if interval <= 0 {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// Enqueue blocks while the pool queue is full, which delays this
				// task's next tick rather than dropping the run.
				s.workerPool.Enqueue(job)
			case <-cancel:
				return
			case <-s.quit:
				return
			}
		}
	}()
	return id
}

// Cancel stops a scheduled job. Unknown ids are ignored.
func (s *Scheduler) Cancel(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.tasks[id]; ok {
		close(ch)
		delete(s.tasks, id)
	}
}

// Active returns the number of scheduled jobs that have not finished
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Scheduler) forget(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
}

// Stop stops all scheduled jobs and waits for their goroutines to exit
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

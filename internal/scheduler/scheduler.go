package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/worker"
)

// LogMsgJobSkipped is logged when a tick finds the worker queue full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Enqueuer is the part of worker.Pool the scheduler needs
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval.
// When runNow is set the job is also enqueued immediately.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, runNow bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if runNow {
			s.enqueue(job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// A tick that finds the queue full is dropped; the next tick retries.
func (s *Scheduler) enqueue(job worker.Job) {
	if !s.workerPool.Enqueue(job) {
		logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", job.Name())
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

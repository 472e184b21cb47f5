package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewPool creates a new worker pool. Each job gets jobTimeout to finish;
// zero means no per-job deadline.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: jobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx := logger.WithRequestID(p.ctx, logger.GenerateRequestID())
	if p.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.jobTimeout)
		defer cancel()
	}

	log := logger.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanicked, "job", job.Name(), "panic", r)
		}
	}()

	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
	}
}

// Enqueue adds a job to the queue without blocking.
// Returns false if the queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}

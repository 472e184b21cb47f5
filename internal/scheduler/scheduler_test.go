package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MishkaBot_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Name() string { return "mock" }

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10, 0)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job, false)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_RunNow(t *testing.T) {
	pool := worker.NewPool(1, 10, 0)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.Schedule(time.Hour, job, true)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("job was not run immediately")
	}

	sched.Stop()
	sched.Stop() // idempotent
	assert.Equal(t, int32(1), job.RunCount.Load())
}

type fullQueue struct{ calls atomic.Int32 }

func (f *fullQueue) Enqueue(worker.Job) bool {
	f.calls.Add(1)
	return false
}

func TestScheduler_FullQueueDoesNotBlock(t *testing.T) {
	q := &fullQueue{}
	sched := New(q)
	sched.Schedule(5*time.Millisecond, &MockJob{Done: make(chan struct{})}, true)

	assert.Eventually(t, func() bool { return q.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	sched.Stop()
}

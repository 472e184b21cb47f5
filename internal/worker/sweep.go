package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/metrics"
)

// StaleRoundEnder is the part of game.Service the sweeper needs
type StaleRoundEnder interface {
	EndStaleRounds(ctx context.Context, maxAge time.Duration) (int64, error)
}

// SweepJob ends rounds abandoned by a crash, a failed round goroutine or a shutdown.
type SweepJob struct {
	rounds StaleRoundEnder
	maxAge time.Duration
}

// NewSweepJob creates a sweep that ends rounds older than maxAge
func NewSweepJob(rounds StaleRoundEnder, maxAge time.Duration) *SweepJob {
	return &SweepJob{rounds: rounds, maxAge: maxAge}
}

// Name implements Job
func (j *SweepJob) Name() string { return JobNameSweepStaleRounds }

// Process implements Job
func (j *SweepJob) Process(ctx context.Context) error {
	n, err := j.rounds.EndStaleRounds(ctx, j.maxAge)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSweep, err)
	}
	if n > 0 {
		metrics.StaleRoundsSwept.Add(float64(n))
		logger.FromContext(ctx).Info(LogMsgSweepEndedRounds, "count", n)
	}
	return nil
}

package game

import (
	"context"
	"errors"
	"time"
)

// errStreamClosed is returned when the message source goes away mid-collection
var errStreamClosed = errors.New("message stream closed")

// CollectOptions bounds a collection by match count and time
type CollectOptions struct {
	MaxMatches int
	Timeout    time.Duration
}

// CollectResult is either Matched (len(Matched) == MaxMatches) or TimedOut,
// in which case Matched holds whatever matched before the deadline.
type CollectResult[T any] struct {
	Matched  []T
	TimedOut bool
}

// First returns the first match, if any
func (r CollectResult[T]) First() (T, bool) {
	if len(r.Matched) == 0 {
		var zero T
		return zero, false
	}
	return r.Matched[0], true
}

// Collect reads in until MaxMatches items satisfy pred or Timeout elapses.
// pred sees every item in arrival order until the collection ends.
// A non-nil error means ctx was canceled or in was closed.
func Collect[T any](ctx context.Context, in <-chan T, pred func(T) bool, opts CollectOptions) (CollectResult[T], error) {
	var result CollectResult[T]
	if opts.MaxMatches <= 0 {
		opts.MaxMatches = 1
	}

	timer := time.NewTimer(opts.Timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-timer.C:
			result.TimedOut = true
			return result, nil
		case item, ok := <-in:
			if !ok {
				return result, errStreamClosed
			}
			if !pred(item) {
				continue
			}
			result.Matched = append(result.Matched, item)
			if len(result.Matched) >= opts.MaxMatches {
				return result, nil
			}
		}
	}
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

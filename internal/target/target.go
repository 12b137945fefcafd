// Package target exposes a block range or the mempool as a stream of
// candidates. A background gatherer fetches raw items concurrently and
// relays them over a framed channel; a decoder reassembles and fans them
// out into candidates in arrival order.
package target

import (
	"context"
	"iter"
	"sync"

	"go.uber.org/zap"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
)

// Target is one open scan source. It is not safe for concurrent use.
type Target struct {
	gatherer *gatherer
	dec      *decoder

	closeOnce sync.Once
	closeErr  error
}

// Open starts gathering in the background and returns a Target ready to
// iterate. Callers must Close it even after a failed iteration.
func Open(ctx context.Context, transport Transport, spec Spec, logger *zap.Logger) (*Target, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g, err := newGatherer(ctx, transport, spec, logger.Named("gatherer"))
	if err != nil {
		return nil, err
	}
	return &Target{
		gatherer: g,
		dec:      &decoder{frames: g.frames, shape: spec.Shape},
	}, nil
}

// Next returns the next candidate in arrival order. It returns (nil, nil)
// once the source is exhausted, and the gathering failure, if any, once
// all candidates gathered before it have been drained.
func (t *Target) Next(ctx context.Context) (candidate.Candidate, error) {
	c, err := t.dec.next(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, t.gatherer.Err()
	}
	return c, nil
}

// Candidates iterates the source to exhaustion. Iteration stops at the
// first error, which is yielded with a nil candidate.
func (t *Target) Candidates(ctx context.Context) iter.Seq2[candidate.Candidate, error] {
	return func(yield func(candidate.Candidate, error) bool) {
		for {
			c, err := t.Next(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			if c == nil {
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Expected returns the number of items the source will yield, once known.
// For block ranges it is the range size; for the mempool it becomes known
// after the snapshot and is zero before that.
func (t *Target) Expected() int64 {
	return t.gatherer.expected.Load()
}

// Alive reports whether the background gatherer is still running.
func (t *Target) Alive() bool {
	return t.gatherer.Alive()
}

// Close stops the gatherer and waits for it to join. Safe to call more
// than once.
func (t *Target) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.gatherer.Stop()
	})
	return t.closeErr
}

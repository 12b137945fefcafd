// Package scan validates height ranges and drives candidate streams
// through filters, collecting matches under memory and cancellation
// guards.
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
	"github.com/blockscope/blockscope-scanner/internal/rest"
	"github.com/blockscope/blockscope-scanner/internal/target"
)

// Policy decides how multiple filters combine.
type Policy int

const (
	// MatchAll accepts a candidate only when every filter accepts it.
	MatchAll Policy = iota

	// MatchAny accepts a candidate when at least one filter accepts it.
	MatchAny
)

func (p Policy) String() string {
	if p == MatchAny {
		return "any"
	}
	return "all"
}

// defaultCheckEvery matches the default fetch concurrency, so the memory
// guard fires roughly once per in-flight batch rather than per item.
const defaultCheckEvery = 3

// Options configures one scan run. The zero value scans unfiltered with
// no memory limit.
type Options struct {
	// Filters are applied per candidate under Policy. With no filters
	// every candidate matches.
	Filters []Matcher
	Policy  Policy

	// MemoryLimitPct aborts the scan when system memory usage crosses
	// this percentage. Zero disables the guard.
	MemoryLimitPct float64

	// CheckEvery is the item granularity of memory checks. Defaults to
	// the fetch concurrency default.
	CheckEvery int

	// Progress, when set, is called after each candidate with the count
	// seen so far and the expected total (zero while unknown).
	Progress func(seen, expected int64)

	// OnMatch, when set, is called for every accepted candidate as it
	// arrives, before the scan completes.
	OnMatch func(candidate.Candidate)

	Memory  MemoryGauge
	Metrics Metrics
	Logger  *zap.Logger
}

// Run opens a source, drives it to exhaustion and returns the accepted
// candidates. The source is always closed, whatever path the scan exits
// through. Matches collected before an abort are returned alongside the
// error.
func Run(ctx context.Context, open func(context.Context) (Source, error), opts Options) (matches []candidate.Candidate, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gauge := opts.Memory
	if gauge == nil {
		gauge = systemMemory{}
	}
	every := int64(opts.CheckEvery)
	if every <= 0 {
		every = defaultCheckEvery
	}

	started := time.Now()
	if opts.Metrics != nil {
		defer func() { opts.Metrics.ObserveScan(err, started) }()
	}

	src, err := open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Warn("source close failed", zap.Error(cerr))
			if err == nil {
				err = cerr
			}
		}
	}()

	var seen int64
	for {
		c, nerr := src.Next(ctx)
		if nerr != nil {
			logger.Error("scan aborted", zap.Int64("seen", seen), zap.Error(nerr))
			return matches, classify(nerr)
		}
		if c == nil {
			break
		}
		seen++

		if opts.MemoryLimitPct > 0 && seen%every == 0 {
			if merr := checkMemory(gauge, opts.MemoryLimitPct); merr != nil {
				logger.Warn("scan aborted", zap.Int64("seen", seen), zap.Error(merr))
				return matches, merr
			}
		}

		ok, merr := accept(c, opts.Filters, opts.Policy)
		if merr != nil {
			logger.Error("scan aborted", zap.Int64("seen", seen), zap.Error(merr))
			return matches, classify(merr)
		}
		if opts.Metrics != nil {
			opts.Metrics.ObserveCandidate(ok)
		}
		if ok {
			matches = append(matches, c)
			if opts.OnMatch != nil {
				opts.OnMatch(c)
			}
		}
		if opts.Progress != nil {
			opts.Progress(seen, src.Expected())
		}
	}

	logger.Info("scan complete",
		zap.Int64("candidates", seen),
		zap.Int("matches", len(matches)),
		zap.Duration("elapsed", time.Since(started)))
	return matches, nil
}

func accept(c candidate.Candidate, filters []Matcher, policy Policy) (bool, error) {
	if len(filters) == 0 {
		return true, nil
	}
	for _, f := range filters {
		ok, err := f.Match(c)
		if err != nil {
			return false, err
		}
		if ok {
			if policy == MatchAny {
				return true, nil
			}
		} else if policy == MatchAll {
			return false, nil
		}
	}
	return policy == MatchAll, nil
}

func checkMemory(gauge MemoryGauge, limitPct float64) error {
	used, err := gauge.UsedPercent()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanFailure, err)
	}
	if used > limitPct {
		return fmt.Errorf("%w: %.0f%% of system memory used, limit %.0f%%", ErrResourceExhausted, used, limitPct)
	}
	return nil
}

// classify maps stream and match failures onto the scan error taxonomy.
// Connection, decode and cancellation failures pass through as themselves,
// a malformed record becomes a decode failure, anything unexpected becomes
// a generic scan failure.
func classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, rest.ErrConnection),
		errors.Is(err, target.ErrDecode):
		return err
	case errors.Is(err, candidate.ErrMalformedRecord):
		return fmt.Errorf("%w: %w", target.ErrDecode, err)
	}
	return fmt.Errorf("%w: %w", ErrScanFailure, err)
}

package scan

import (
	"context"
	"time"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Source is one open candidate stream. *target.Target satisfies it.
type Source interface {
	// Next returns the next candidate, or (nil, nil) when exhausted.
	Next(ctx context.Context) (candidate.Candidate, error)

	// Expected returns the total item count once known, zero before.
	Expected() int64

	// Close releases the source and any background work it owns.
	Close() error
}

// Matcher accepts or rejects one candidate. filter.Filter satisfies it.
// A returned error aborts the scan, classified like a stream failure.
type Matcher interface {
	Match(c candidate.Candidate) (bool, error)
}

// MemoryGauge reports system memory usage as a percentage.
type MemoryGauge interface {
	UsedPercent() (float64, error)
}

// Metrics observes scan outcomes. *metrics.Scanner satisfies it.
type Metrics interface {
	ObserveCandidate(matched bool)
	ObserveScan(err error, started time.Time)
}

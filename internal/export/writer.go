// Package export streams matched candidates out as newline-delimited JSON.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
	"github.com/blockscope/blockscope-scanner/pkg/batcher"
)

const (
	defaultFlushSize     = 64
	defaultFlushInterval = 500 * time.Millisecond
	defaultFlushRPS      = 50
)

// Writer batches candidates in the background and writes each as one
// NDJSON line. Close flushes whatever is still buffered.
type Writer struct {
	mu  sync.Mutex
	out io.Writer

	batcher *batcher.Batcher[candidate.Candidate]
}

// NewWriter starts a writer flushing to out. The context bounds the
// background flusher.
func NewWriter(ctx context.Context, out io.Writer, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Writer{out: out}
	w.batcher = batcher.New(logger.Named("export"), w.flush, defaultFlushSize, defaultFlushInterval, defaultFlushRPS)
	w.batcher.Start(ctx)
	return w
}

// Write queues one candidate for export.
func (w *Writer) Write(ctx context.Context, c candidate.Candidate) error {
	return w.batcher.Add(ctx, c)
}

// Close flushes buffered candidates and reports the last write failure.
func (w *Writer) Close() error {
	return w.batcher.Stop()
}

func (w *Writer) flush(_ context.Context, items []candidate.Candidate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var buf bytes.Buffer
	for _, c := range items {
		buf.WriteString(c.String())
		buf.WriteByte('\n')
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write export batch: %w", err)
	}
	return nil
}

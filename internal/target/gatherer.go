package target

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blockscope/blockscope-scanner/internal/clock"
	"github.com/blockscope/blockscope-scanner/internal/rest"
	"github.com/blockscope/blockscope-scanner/pkg/workerpool"
)

const (
	// DefaultConcurrency bounds how many items are fetched at once when
	// the Spec does not say otherwise.
	DefaultConcurrency = 3

	chunkSize   = 32 * 1024
	frameBuffer = 16
	joinTimeout = 3 * time.Second
)

// frame is one unit on the wire between gatherer and decoder. A frame
// with last set closes the current item; closing the channel closes the
// stream. Chunks of a single item are never interleaved with another's.
type frame struct {
	data []byte
	last bool
}

// gatherer fetches raw items from the node in the background and relays
// them as framed chunks. It owns its goroutine and cancellation scope;
// Stop tears it down and waits for the goroutine to join.
type gatherer struct {
	transport Transport
	spec      Spec
	logger    *zap.Logger

	frames chan frame
	cancel context.CancelFunc
	done   chan struct{}

	expected atomic.Int64

	// emitMu serializes whole items onto the frames channel. broken is
	// set when an item was cut off mid-stream, after which no further
	// item may be emitted or the decoder would splice records.
	emitMu sync.Mutex
	broken bool

	errMu  sync.Mutex
	runErr error
}

func newGatherer(ctx context.Context, transport Transport, spec Spec, logger *zap.Logger) (*gatherer, error) {
	if transport == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrWorkerStart)
	}
	if !spec.Shape.valid() {
		return nil, fmt.Errorf("%w: %s", ErrWorkerStart, spec.Shape)
	}
	if spec.Concurrency <= 0 {
		spec.Concurrency = DefaultConcurrency
	}
	if spec.Shape.Blocks() && (spec.Start < 0 || spec.Start > spec.End) {
		return nil, fmt.Errorf("%w: bad height range [%d, %d]", ErrWorkerStart, spec.Start, spec.End)
	}

	ctx, cancel := context.WithCancel(ctx)
	g := &gatherer{
		transport: transport,
		spec:      spec,
		logger:    logger,
		frames:    make(chan frame, frameBuffer),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	if spec.Shape.Blocks() {
		g.expected.Store(spec.End - spec.Start + 1)
	}
	go g.run(ctx)
	return g, nil
}

func (g *gatherer) run(ctx context.Context) {
	defer close(g.done)
	defer close(g.frames)

	var err error
	switch {
	case g.spec.Shape.Blocks():
		err = g.gatherBlocks(ctx)
	case g.spec.Shape == ShapeMempoolSummary:
		err = g.gatherMempool(ctx, g.emitMempoolEntry)
	default:
		err = g.gatherMempool(ctx, g.emitMempoolTx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		g.logger.Error("gather failed", zap.Stringer("shape", g.spec.Shape), zap.Error(err))
		g.setErr(err)
	}
}

func (g *gatherer) gatherBlocks(ctx context.Context) error {
	n := int(g.spec.End - g.spec.Start + 1)

	detail := rest.DetailFull
	if g.spec.Shape == ShapeBlockSummary {
		detail = rest.DetailNone
	}
	return workerpool.Process(ctx, g.spec.Concurrency, n, func(ctx context.Context, i int) error {
		height := g.spec.Start + int64(i)
		hash, err := g.transport.BlockHash(ctx, height)
		if err != nil {
			return fmt.Errorf("resolve hash at height %d: %w", height, err)
		}
		body, err := g.transport.Block(ctx, hash, detail)
		if err != nil {
			return fmt.Errorf("fetch block %d: %w", height, err)
		}
		defer body.Close()

		g.logger.Debug("gathered block", zap.Int64("height", height))
		return g.emitStream(ctx, body)
	})
}

// gatherMempool snapshots the mempool once, then hands each entry to emit
// under the worker pool. Transactions evicted between the snapshot and
// the per-entry fetch are skipped.
func (g *gatherer) gatherMempool(ctx context.Context, emit func(context.Context, string, map[string]any) error) error {
	entries, err := g.transport.Mempool(ctx)
	if err != nil {
		return fmt.Errorf("snapshot mempool: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	g.expected.Store(int64(len(ids)))
	g.logger.Debug("mempool snapshot", zap.Int("entries", len(ids)))

	return workerpool.Process(ctx, g.spec.Concurrency, len(ids), func(ctx context.Context, i int) error {
		err := emit(ctx, ids[i], entries[ids[i]])
		if evicted(err) {
			g.logger.Debug("skipping evicted transaction", zap.String("txid", ids[i]))
			return nil
		}
		return err
	})
}

func (g *gatherer) emitMempoolEntry(ctx context.Context, txid string, entry map[string]any) error {
	entry["txid"] = txid
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode mempool entry %s: %w", txid, err)
	}
	return g.emitItem(ctx, data)
}

func (g *gatherer) emitMempoolTx(ctx context.Context, txid string, entry map[string]any) error {
	tx, err := g.transport.Tx(ctx, txid)
	if err != nil {
		return fmt.Errorf("fetch mempool tx %s: %w", txid, err)
	}
	// Mempool transactions are unconfirmed, so confirmation metadata
	// comes from the entry instead of a block header.
	tx["height"] = entry["height"]
	tx["timestamp_date"] = entry["time"]

	if g.spec.Shape == ShapeMempoolPrevouts {
		if err := g.resolvePrevouts(ctx, tx); err != nil {
			return fmt.Errorf("resolve prevouts of %s: %w", txid, err)
		}
	}
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encode mempool tx %s: %w", txid, err)
	}
	return g.emitItem(ctx, data)
}

// resolvePrevouts attaches a prevout record to every input of tx. Unspent
// outpoints come from the UTXO set; already-spent ones fall back to the
// parent transaction and carry height 0 because the UTXO set no longer
// knows their confirmation height.
func (g *gatherer) resolvePrevouts(ctx context.Context, tx map[string]any) error {
	vins, _ := tx["vin"].([]any)
	eg, ctx := errgroup.WithContext(ctx)
	for _, v := range vins {
		in, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if _, coinbase := in["coinbase"]; coinbase {
			continue
		}
		eg.Go(func() error {
			txid, _ := in["txid"].(string)
			vout := intField(in["vout"])

			res, err := g.transport.UTXOs(ctx, fmt.Sprintf("%s-%d", txid, vout))
			if err != nil {
				return err
			}
			var prevout map[string]any
			if len(res.UTXOs) > 0 {
				prevout = res.UTXOs[0]
			} else {
				parent, err := g.transport.Tx(ctx, txid)
				if err != nil {
					return err
				}
				vouts, _ := parent["vout"].([]any)
				if vout < 0 || vout >= len(vouts) {
					return fmt.Errorf("outpoint %s-%d not in parent", txid, vout)
				}
				prevout, ok = vouts[vout].(map[string]any)
				if !ok {
					return fmt.Errorf("outpoint %s-%d malformed in parent", txid, vout)
				}
				prevout["height"] = float64(0)
			}
			in["prevout"] = prevout
			return nil
		})
	}
	return eg.Wait()
}

// emitItem sends one complete, already-buffered item.
func (g *gatherer) emitItem(ctx context.Context, data []byte) error {
	g.emitMu.Lock()
	defer g.emitMu.Unlock()
	if g.broken {
		return ctx.Err()
	}
	if err := g.send(ctx, frame{data: data}); err != nil {
		g.broken = true
		return err
	}
	if err := g.send(ctx, frame{last: true}); err != nil {
		g.broken = true
		return err
	}
	return nil
}

// emitStream relays an item chunk by chunk as it arrives from the node,
// holding the emit lock for the whole item so chunks never interleave.
func (g *gatherer) emitStream(ctx context.Context, r io.Reader) error {
	g.emitMu.Lock()
	defer g.emitMu.Unlock()
	if g.broken {
		return ctx.Err()
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if serr := g.send(ctx, frame{data: chunk}); serr != nil {
				g.broken = true
				return serr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			g.broken = true
			return fmt.Errorf("read item: %w", err)
		}
	}
	if err := g.send(ctx, frame{last: true}); err != nil {
		g.broken = true
		return err
	}
	return nil
}

func (g *gatherer) send(ctx context.Context, f frame) error {
	select {
	case g.frames <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels the gatherer and waits for its goroutine to join.
func (g *gatherer) Stop() error {
	g.cancel()
	if !clock.WaitClosed(g.done, joinTimeout) {
		return fmt.Errorf("%w within %s", ErrStopTimeout, joinTimeout)
	}
	return nil
}

// Alive reports whether the background goroutine is still running.
func (g *gatherer) Alive() bool {
	select {
	case <-g.done:
		return false
	default:
		return true
	}
}

// Err returns the failure that ended gathering, if any. Only meaningful
// once the frames channel is closed.
func (g *gatherer) Err() error {
	g.errMu.Lock()
	defer g.errMu.Unlock()
	return g.runErr
}

func (g *gatherer) setErr(err error) {
	g.errMu.Lock()
	defer g.errMu.Unlock()
	g.runErr = err
}

func evicted(err error) bool {
	var statusErr *rest.StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

func intField(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return -1
}

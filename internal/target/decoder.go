package target

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
)

// decoder reassembles framed chunks into items and turns each item into
// one or more candidates, depending on the stream shape.
type decoder struct {
	frames <-chan frame
	shape  Shape

	queue []candidate.Candidate
	eof   bool
}

// next returns the next candidate, or (nil, nil) once the stream is
// exhausted. A decode failure ends the stream.
func (d *decoder) next(ctx context.Context) (candidate.Candidate, error) {
	for {
		if len(d.queue) > 0 {
			c := d.queue[0]
			d.queue = d.queue[1:]
			return c, nil
		}
		if d.eof {
			return nil, nil
		}

		item, ok, err := d.nextItem(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			d.eof = true
			continue
		}
		cands, err := d.decode(item)
		if err != nil {
			d.eof = true
			return nil, err
		}
		d.queue = cands
	}
}

// nextItem accumulates chunks until an end-of-item frame. A partial item
// left when the channel closes is dropped; the gatherer reports the
// failure that truncated it.
func (d *decoder) nextItem(ctx context.Context) ([]byte, bool, error) {
	var buf []byte
	for {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case f, ok := <-d.frames:
			if !ok {
				return nil, false, nil
			}
			if f.last {
				return buf, true, nil
			}
			buf = append(buf, f.data...)
		}
	}
}

func (d *decoder) decode(item []byte) ([]candidate.Candidate, error) {
	var raw map[string]any
	if err := json.Unmarshal(item, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, d.shape, err)
	}

	switch d.shape {
	case ShapeBlockSummary, ShapeBlockFull:
		return []candidate.Candidate{candidate.NewBlock(raw)}, nil

	case ShapeBlockTxs:
		txs := candidate.NewBlock(raw).Txs()
		cands := make([]candidate.Candidate, len(txs))
		for i, tx := range txs {
			cands[i] = tx
		}
		return cands, nil

	case ShapeMempoolSummary:
		return []candidate.Candidate{candidate.NewRecord(raw)}, nil

	case ShapeMempoolTxs:
		return []candidate.Candidate{candidate.NewTransaction(raw, false)}, nil

	case ShapeMempoolPrevouts:
		return []candidate.Candidate{candidate.NewTransaction(raw, true)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrDecode, d.shape)
}

package target

import "fmt"

// Shape selects what a scan source yields per item and how raw records
// are fanned out into candidates.
type Shape int

const (
	// ShapeBlockSummary yields one Block candidate per height, fetched
	// without transaction details.
	ShapeBlockSummary Shape = iota

	// ShapeBlockFull yields one Block candidate per height with the full
	// transaction list embedded.
	ShapeBlockFull

	// ShapeBlockTxs yields one Transaction candidate per transaction of
	// every block in the range, with prevout data attached by the node.
	ShapeBlockTxs

	// ShapeMempoolSummary yields one lightweight Record candidate per
	// mempool entry, carrying the node's fee and ancestry metadata.
	ShapeMempoolSummary

	// ShapeMempoolTxs yields one Transaction candidate per mempool
	// transaction. Input-side fields are unavailable.
	ShapeMempoolTxs

	// ShapeMempoolPrevouts is ShapeMempoolTxs with prevouts resolved
	// through extra UTXO-set and parent-transaction lookups.
	ShapeMempoolPrevouts
)

var shapeNames = map[Shape]string{
	ShapeBlockSummary:    "block/summary",
	ShapeBlockFull:       "block/full",
	ShapeBlockTxs:        "block/txs",
	ShapeMempoolSummary:  "mempool/summary",
	ShapeMempoolTxs:      "mempool/txs",
	ShapeMempoolPrevouts: "mempool/prevouts",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Blocks reports whether the shape reads from the chain rather than
// the mempool.
func (s Shape) Blocks() bool {
	switch s {
	case ShapeBlockSummary, ShapeBlockFull, ShapeBlockTxs:
		return true
	}
	return false
}

func (s Shape) valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShape maps a source kind and shape name from the command line to
// a Shape.
func ParseShape(kind, shape string) (Shape, error) {
	switch kind + "/" + shape {
	case "block/summary":
		return ShapeBlockSummary, nil
	case "block/full":
		return ShapeBlockFull, nil
	case "block/txs":
		return ShapeBlockTxs, nil
	case "mempool/summary":
		return ShapeMempoolSummary, nil
	case "mempool/txs":
		return ShapeMempoolTxs, nil
	case "mempool/prevouts":
		return ShapeMempoolPrevouts, nil
	}
	return 0, fmt.Errorf("unknown source %q with shape %q", kind, shape)
}

// Spec describes one scan source: what to read and how wide to fan out.
// Start and End are inclusive block heights, ignored for mempool shapes.
type Spec struct {
	Shape       Shape
	Start       int64
	End         int64
	Concurrency int
}

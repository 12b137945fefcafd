package candidate

import (
	"fmt"
	"maps"
	"sync"
)

// Block is a candidate over one block record. Summary blocks carry TXIDs
// only; full-detail blocks carry complete transaction records that can be
// fanned out as Transaction candidates.
type Block struct {
	Record

	txsOnce sync.Once
	txs     []*Transaction
}

// NewBlock wraps a decoded block record.
func NewBlock(raw map[string]any) *Block {
	return &Block{Record: Record{raw: raw}}
}

// NTx returns the number of transactions in the block.
func (b *Block) NTx() int {
	items, ok := b.raw["tx"].([]any)
	if !ok {
		return 0
	}
	return len(items)
}

// TxIDs returns the block's transaction ids. For summary blocks these come
// straight from the tx list; for full blocks from each record's txid.
func (b *Block) TxIDs() []string {
	items, ok := b.raw["tx"].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		switch tx := item.(type) {
		case string:
			ids = append(ids, tx)
		case map[string]any:
			if id, ok := tx["txid"].(string); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Txs fans a full-detail block out into Transaction candidates, injecting
// the block's height and timestamp into each. Summary blocks yield none.
// Each transaction gets a shallow copy of its record so the block's raw data
// stays untouched.
func (b *Block) Txs() []*Transaction {
	b.txsOnce.Do(func() {
		height := b.raw["height"]
		blockTime := b.raw["time"]
		for _, raw := range asObjects(b.raw["tx"]) {
			tx := maps.Clone(raw)
			tx["height"] = height
			tx["timestamp_date"] = blockTime
			b.txs = append(b.txs, NewTransaction(tx, true))
		}
	})
	return b.txs
}

// Date returns the block timestamp formatted as "YYYY-MM-DD HH:MM".
func (b *Block) Date() (string, error) {
	ts, ok := asNumber(b.raw["time"])
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFieldNotFound, "time")
	}
	return formatUnix(ts), nil
}

// Field resolves derived block attributes first, then raw keys.
func (b *Block) Field(name string) (any, error) {
	switch name {
	case "n_tx":
		return b.NTx(), nil
	case "date":
		return b.Date()
	}
	return b.Record.Field(name)
}

package target

import (
	"context"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/blockscope/blockscope-scanner/internal/rest"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Transport is the node access the gatherer needs. *rest.Client satisfies it.
type Transport interface {
	// BlockHash resolves the hash of the block at the given height.
	BlockHash(ctx context.Context, height int64) (*chainhash.Hash, error)

	// Block streams the verbose JSON form of a block. The caller owns
	// the returned body.
	Block(ctx context.Context, hash *chainhash.Hash, detail rest.BlockDetail) (io.ReadCloser, error)

	// Mempool returns the full mempool contents keyed by txid.
	Mempool(ctx context.Context) (map[string]map[string]any, error)

	// Tx fetches one transaction in verbose JSON form.
	Tx(ctx context.Context, txid string) (map[string]any, error)

	// UTXOs queries the UTXO set for an outpoint ("txid-vout").
	UTXOs(ctx context.Context, outpoint string) (rest.UTXOResult, error)
}

package rest

// BlockDetail selects how much transaction detail a block fetch returns.
type BlockDetail int

const (
	// DetailNone requests blocks with TXIDs only (/block/notxdetails).
	DetailNone BlockDetail = iota
	// DetailFull requests blocks with complete transaction data (/block).
	DetailFull
)

// ChainInfo mirrors the node's /chaininfo response. Blocks and Pruned are
// pointers so callers can tell a missing key from a zero value.
type ChainInfo struct {
	Chain         string `json:"chain"`
	Blocks        *int64 `json:"blocks"`
	Headers       int64  `json:"headers"`
	BestBlockHash string `json:"bestblockhash"`
	Pruned        *bool  `json:"pruned"`
	PruneHeight   int64  `json:"pruneheight"`
}

// MempoolInfo mirrors the node's /mempool/info response.
type MempoolInfo struct {
	Size          int64   `json:"size"`
	Bytes         int64   `json:"bytes"`
	Usage         int64   `json:"usage"`
	MempoolMinFee float64 `json:"mempoolminfee"`
}

// UTXOResult mirrors the node's /getutxos response. UTXOs stay as generic
// maps because they are spliced verbatim into raw transaction records.
type UTXOResult struct {
	ChainHeight  int64            `json:"chainHeight"`
	ChainTipHash string           `json:"chaintipHash"`
	Bitmap       string           `json:"bitmap"`
	UTXOs        []map[string]any `json:"utxos"`
}

// Package rest implements a client for the Bitcoin Core REST interface.
// https://github.com/bitcoin/bitcoin/blob/master/doc/REST-interface.md
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blockscope/blockscope-scanner/internal/clock"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

const (
	// DefaultEndpoint is Bitcoin Core's default REST address.
	DefaultEndpoint = "http://127.0.0.1:8332"

	defaultTimeout = 15 * time.Second
	userAgent      = "blockscope-scanner"

	// The node answers 503 while warming up; retry a couple of times
	// before giving up.
	unavailableRetries = 2
	unavailableBackoff = 250 * time.Millisecond
)

// Metrics records outcomes of REST calls.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Client issues GET requests against a node's REST endpoint. All requests
// are paced through a shared rate limiter; the node processes them serially
// anyway, the limiter just keeps bursts polite.
type Client struct {
	http     *http.Client
	endpoint string
	rl       ratelimit.Limiter
	metrics  Metrics
}

// NewClient constructs a REST client. A nil httpClient gets a default with a
// 15s total timeout; rps bounds the request rate.
func NewClient(endpoint string, httpClient *http.Client, metrics Metrics, rps int) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if rps < 1 {
		rps = 1
	}
	return &Client{
		http:     httpClient,
		endpoint: strings.TrimRight(endpoint, "/"),
		rl:       ratelimit.New(rps),
		metrics:  metrics,
	}
}

// ChainInfo returns chain state info from /chaininfo.
func (c *Client) ChainInfo(ctx context.Context) (info ChainInfo, err error) {
	started := time.Now()
	defer func() { c.observe("chain_info", err, started) }()

	err = c.getJSON(ctx, "chain_info", "/chaininfo", &info)
	return info, err
}

// BlockHash resolves the block hash at the given height.
func (c *Client) BlockHash(ctx context.Context, height int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() { c.observe("block_hash", err, started) }()

	var res struct {
		BlockHash string `json:"blockhash"`
	}
	if err = c.getJSON(ctx, "block_hash", fmt.Sprintf("/blockhashbyheight/%d", height), &res); err != nil {
		return nil, err
	}
	hash, err = chainhash.NewHashFromStr(res.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", res.BlockHash, err)
	}
	return hash, nil
}

// Block returns the block body as a stream. The caller owns the returned
// reader and must close it.
func (c *Client) Block(ctx context.Context, hash *chainhash.Hash, detail BlockDetail) (body io.ReadCloser, err error) {
	started := time.Now()
	defer func() { c.observe("block", err, started) }()

	path := "/block/" + hash.String()
	if detail == DetailNone {
		path = "/block/notxdetails/" + hash.String()
	}
	return c.stream(ctx, "block", path)
}

// Tx returns one transaction as a raw decoded record.
func (c *Client) Tx(ctx context.Context, txid string) (tx map[string]any, err error) {
	started := time.Now()
	defer func() { c.observe("tx", err, started) }()

	err = c.getJSON(ctx, "tx", "/tx/"+txid, &tx)
	return tx, err
}

// Mempool returns the full mempool contents keyed by txid. Entries stay as
// raw decoded records because they end up spliced into candidate data.
func (c *Client) Mempool(ctx context.Context) (entries map[string]map[string]any, err error) {
	started := time.Now()
	defer func() { c.observe("mempool_contents", err, started) }()

	err = c.getJSON(ctx, "mempool_contents", "/mempool/contents", &entries)
	return entries, err
}

// MempoolInfo returns mempool state info.
func (c *Client) MempoolInfo(ctx context.Context) (info MempoolInfo, err error) {
	started := time.Now()
	defer func() { c.observe("mempool_info", err, started) }()

	err = c.getJSON(ctx, "mempool_info", "/mempool/info", &info)
	return info, err
}

// UTXOs queries the UTXO set for an outpoint ("txid-vout").
func (c *Client) UTXOs(ctx context.Context, outpoint string) (res UTXOResult, err error) {
	started := time.Now()
	defer func() { c.observe("get_utxos", err, started) }()

	err = c.getJSON(ctx, "get_utxos", "/getutxos/"+outpoint, &res)
	return res, err
}

func (c *Client) observe(operation string, err error, started time.Time) {
	if c.metrics != nil {
		c.metrics.Observe(operation, err, started)
	}
}

func (c *Client) getJSON(ctx context.Context, operation, path string, out any) error {
	body, err := c.stream(ctx, operation, path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) stream(ctx context.Context, operation, path string) (io.ReadCloser, error) {
	url := c.endpoint + "/rest" + path + ".json"

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request %s: %w", url, err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Content-Type", "text/plain")

		c.rl.Take()
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %v", ErrConnection, err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp.Body, nil
		}

		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		resp.Body.Close()

		if resp.StatusCode == http.StatusServiceUnavailable && attempt < unavailableRetries {
			if err := clock.SleepWithContext(ctx, unavailableBackoff); err != nil {
				return nil, err
			}
			continue
		}

		return nil, &StatusError{
			Operation: operation,
			Code:      resp.StatusCode,
			Body:      strings.TrimSpace(string(msg)),
		}
	}
}

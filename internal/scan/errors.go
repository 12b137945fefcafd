package scan

import "errors"

var (
	// ErrInvalidArgument rejects malformed height inputs before any I/O.
	ErrInvalidArgument = errors.New("scan: invalid height argument")

	// ErrMalformedChainInfo means the node's chain info is missing the
	// fields range resolution depends on.
	ErrMalformedChainInfo = errors.New("scan: chain info malformed")

	// ErrPruneRange means the requested range is not available because
	// the node pruned it.
	ErrPruneRange = errors.New("scan: range not available on pruned node")

	// ErrResourceExhausted means the memory guard tripped mid-scan.
	ErrResourceExhausted = errors.New("scan: memory limit reached")

	// ErrScanFailure wraps unexpected failures of the scan loop.
	ErrScanFailure = errors.New("scan: scan failed")
)

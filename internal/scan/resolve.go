package scan

import (
	"fmt"

	"github.com/blockscope/blockscope-scanner/internal/rest"
)

// Resolve turns a requested (start, end) height pair into a concrete,
// validated inclusive range against the node's chain state.
//
// A negative start means "the last |start| blocks": with end == 0 the
// range runs up to the tip, otherwise end is the number of blocks to
// scan from that point, capped at the tip. On a pruned node the range
// must lie above the prune height; force clamps start up to it instead
// of failing.
//
// Resolve is pure: chain info is supplied by the caller and no I/O
// happens here.
func Resolve(start, end int64, info rest.ChainInfo, force bool) (int64, int64, error) {
	if end < 0 {
		return 0, 0, fmt.Errorf("%w: end height %d cannot be negative", ErrInvalidArgument, end)
	}
	// Checked on the raw inputs, before negative-offset resolution.
	if start > end {
		return 0, 0, fmt.Errorf("%w: start height %d is higher than end height %d", ErrInvalidArgument, start, end)
	}
	if info.Pruned == nil || info.Blocks == nil {
		return 0, 0, fmt.Errorf("%w: missing pruned flag or block count", ErrMalformedChainInfo)
	}
	tip := *info.Blocks
	if start > tip {
		return 0, 0, fmt.Errorf("%w: start height %d is higher than the tip (%d)", ErrInvalidArgument, start, tip)
	}
	if end > tip {
		return 0, 0, fmt.Errorf("%w: end height %d is higher than the tip (%d)", ErrInvalidArgument, end, tip)
	}

	if start < 0 {
		if end == 0 {
			end = tip
			start = end + start + 1
		} else {
			start = tip + start + 1
			if e := start + end - 1; e <= tip {
				end = e
			} else {
				end = tip
			}
		}
		if start < 0 {
			start = 0
		}
	}

	if *info.Pruned {
		if end < info.PruneHeight {
			return 0, 0, fmt.Errorf("%w: end height %d is below the lowest stored block (%d)",
				ErrPruneRange, end, info.PruneHeight)
		}
		if start < info.PruneHeight {
			if !force {
				return 0, 0, fmt.Errorf("%w: start height %d is below the lowest stored block (%d), pass --force to start from the lowest available height",
					ErrPruneRange, start, info.PruneHeight)
			}
			start = info.PruneHeight
		}
	}
	return start, end, nil
}

package scan

import (
	"errors"
	"strings"
	"testing"

	"github.com/blockscope/blockscope-scanner/internal/rest"
)

func chainInfo(tip int64, pruned bool, pruneHeight int64) rest.ChainInfo {
	return rest.ChainInfo{
		Chain:       "main",
		Blocks:      &tip,
		Pruned:      &pruned,
		PruneHeight: pruneHeight,
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     int64
		end       int64
		info      rest.ChainInfo
		force     bool
		wantStart int64
		wantEnd   int64
		wantErr   error
	}{
		{
			name:  "valid range is identity",
			start: 60, end: 80,
			info:      chainInfo(100, false, 0),
			wantStart: 60, wantEnd: 80,
		},
		{
			name:  "last n blocks to tip",
			start: -10, end: 0,
			info:      chainInfo(100, false, 0),
			wantStart: 91, wantEnd: 100,
		},
		{
			name:  "last n blocks with window",
			start: -10, end: 5,
			info:      chainInfo(100, false, 0),
			wantStart: 91, wantEnd: 95,
		},
		{
			name:  "window capped at tip",
			start: -10, end: 50,
			info:      chainInfo(100, false, 0),
			wantStart: 91, wantEnd: 100,
		},
		{
			name:  "offset past genesis clamps to zero",
			start: -500, end: 0,
			info:      chainInfo(100, false, 0),
			wantStart: 0, wantEnd: 100,
		},
		{
			name:  "negative end",
			start: 10, end: -1,
			info:    chainInfo(100, false, 0),
			wantErr: ErrInvalidArgument,
		},
		{
			name:  "inverted raw range",
			start: 90, end: 80,
			info:    chainInfo(100, false, 0),
			force:   true,
			wantErr: ErrInvalidArgument,
		},
		{
			name:  "start above tip",
			start: 150, end: 200,
			info:    chainInfo(100, false, 0),
			wantErr: ErrInvalidArgument,
		},
		{
			name:  "end above tip",
			start: 50, end: 200,
			info:    chainInfo(100, false, 0),
			wantErr: ErrInvalidArgument,
		},
		{
			name:  "missing pruned flag",
			start: 10, end: 20,
			info:    rest.ChainInfo{Blocks: new(int64)},
			wantErr: ErrMalformedChainInfo,
		},
		{
			name:  "missing block count",
			start: 10, end: 20,
			info:    rest.ChainInfo{Pruned: new(bool)},
			wantErr: ErrMalformedChainInfo,
		},
		{
			name:  "pruned range entirely below prune height",
			start: 30, end: 40,
			info:    chainInfo(100, true, 50),
			wantErr: ErrPruneRange,
		},
		{
			name:  "pruned start below prune height without force",
			start: 30, end: 80,
			info:    chainInfo(100, true, 50),
			wantErr: ErrPruneRange,
		},
		{
			name:  "pruned start clamped with force",
			start: 30, end: 80,
			info:      chainInfo(100, true, 50),
			force:     true,
			wantStart: 50, wantEnd: 80,
		},
		{
			name:  "pruned range above prune height",
			start: 60, end: 80,
			info:      chainInfo(100, true, 50),
			wantStart: 60, wantEnd: 80,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end, err := Resolve(tt.start, tt.end, tt.info, tt.force)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("Resolve() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolve_PruneMessageNamesForce(t *testing.T) {
	t.Parallel()

	_, _, err := Resolve(30, 80, chainInfo(100, true, 50), false)
	if err == nil {
		t.Fatal("Resolve() expected error")
	}
	if got := err.Error(); !strings.Contains(got, "--force") {
		t.Fatalf("Resolve() error %q does not mention the force option", got)
	}
}

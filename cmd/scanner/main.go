package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blockscope/blockscope-scanner/internal/candidate"
	"github.com/blockscope/blockscope-scanner/internal/export"
	"github.com/blockscope/blockscope-scanner/internal/filter"
	"github.com/blockscope/blockscope-scanner/internal/metrics"
	"github.com/blockscope/blockscope-scanner/internal/rest"
	"github.com/blockscope/blockscope-scanner/internal/scan"
	"github.com/blockscope/blockscope-scanner/internal/target"
)

type config struct {
	NodeURL        string        `long:"node-url" env:"BLOCKSCOPE_NODE_URL" description:"Bitcoin node REST URL" default:"http://127.0.0.1:8332"`
	Kind           string        `long:"kind" env:"BLOCKSCOPE_KIND" description:"scan source: block or mempool" default:"block"`
	Shape          string        `long:"shape" env:"BLOCKSCOPE_SHAPE" description:"candidate shape: summary, full, txs or prevouts" default:"txs"`
	Start          int64         `long:"start" env:"BLOCKSCOPE_START" description:"start height, negative means the last N blocks" default:"-10"`
	End            int64         `long:"end" env:"BLOCKSCOPE_END" description:"end height, 0 means the chain tip"`
	Filters        []string      `long:"filter" env:"BLOCKSCOPE_FILTERS" env-delim:";" description:"filter expression over candidate fields, repeatable (e.g. 'n_eq>=3,den>0')"`
	MatchAny       bool          `long:"match-any" env:"BLOCKSCOPE_MATCH_ANY" description:"accept candidates matching any filter instead of all"`
	Concurrency    int           `long:"concurrency-limit" env:"BLOCKSCOPE_CONCURRENCY_LIMIT" description:"max concurrent fetches" default:"3"`
	MemoryLimitPct float64       `long:"memory-limit" env:"BLOCKSCOPE_MEMORY_LIMIT" description:"abort when system memory usage exceeds this percentage, 0 disables the guard"`
	Force          bool          `long:"force" env:"BLOCKSCOPE_FORCE" description:"clamp start to the prune height instead of failing on pruned ranges"`
	RequestRate    int           `long:"request-rate" env:"BLOCKSCOPE_REQUEST_RATE" description:"max REST requests per second" default:"50"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"BLOCKSCOPE_HTTP_TIMEOUT" description:"HTTP timeout for REST requests" default:"15s"`
	MetricsAddr    string        `long:"metrics-addr" env:"BLOCKSCOPE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Out            string        `long:"out" env:"BLOCKSCOPE_OUT" description:"write matches as NDJSON to this file, '-' for stdout" default:"-"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("scan failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	shape, err := target.ParseShape(cfg.Kind, cfg.Shape)
	if err != nil {
		return err
	}
	filters, err := parseFilters(cfg.Filters)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Probe the node first; the chain name labels every metric the real
	// client emits afterwards.
	info, err := rest.NewClient(cfg.NodeURL, httpClient, nil, cfg.RequestRate).ChainInfo(ctx)
	if err != nil {
		return fmt.Errorf("probe node: %w", err)
	}
	client := rest.NewClient(cfg.NodeURL, httpClient, metrics.NewRESTClient(info.Chain), cfg.RequestRate)

	spec := target.Spec{Shape: shape, Concurrency: cfg.Concurrency}
	if shape.Blocks() {
		start, end, err := scan.Resolve(cfg.Start, cfg.End, info, cfg.Force)
		if err != nil {
			return err
		}
		spec.Start, spec.End = start, end
		logger.Info("resolved height range", zap.Int64("start", start), zap.Int64("end", end))
	}

	out := os.Stdout
	if cfg.Out != "-" && cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	writer := export.NewWriter(ctx, out, logger)

	policy := scan.MatchAll
	if cfg.MatchAny {
		policy = scan.MatchAny
	}

	matches, scanErr := scan.Run(ctx, func(ctx context.Context) (scan.Source, error) {
		tgt, err := target.Open(ctx, client, spec, logger)
		if err != nil {
			return nil, err
		}
		return tgt, nil
	}, scan.Options{
		Filters:        filters,
		Policy:         policy,
		MemoryLimitPct: cfg.MemoryLimitPct,
		CheckEvery:     cfg.Concurrency,
		Progress: func(seen, expected int64) {
			if expected > 0 && seen%100 == 0 {
				logger.Debug("scan progress", zap.Int64("seen", seen), zap.Int64("expected", expected))
			}
		},
		OnMatch: func(c candidate.Candidate) {
			if werr := writer.Write(ctx, c); werr != nil {
				logger.Warn("dropping match from export", zap.Error(werr))
			}
		},
		Metrics: metrics.NewScanner(shape.String()),
		Logger:  logger.Named("scan"),
	})

	// Matches collected before an abort are still exported.
	if err := writer.Close(); err != nil {
		logger.Error("export incomplete", zap.Error(err))
		if scanErr == nil {
			scanErr = err
		}
	}
	logger.Info("scan finished", zap.Int("matches", len(matches)), zap.Stringer("shape", shape))
	return scanErr
}

func parseFilters(exprs []string) ([]scan.Matcher, error) {
	matchers := make([]scan.Matcher, 0, len(exprs))
	for _, expr := range exprs {
		f, err := filter.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("parse filter %q: %w", expr, err)
		}
		matchers = append(matchers, f)
	}
	return matchers, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

// Package main runs the UTXO chain streamer: it follows a node behind its tip and exports blocks,
// transactions and traces to the configured outputs.
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

	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/exporter"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/jobs"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/rpc"
	"github.com/goodnatureofminers/blockinsight7000-streamer/internal/utxo/streamer"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/retry"
	"github.com/goodnatureofminers/blockinsight7000-streamer/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type config struct {
	ProviderURI string        `long:"provider-uri" env:"STREAMER_PROVIDER_URI" description:"Node JSON-RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"STREAMER_RPC_USER" description:"Node RPC username"`
	RPCPassword string        `long:"rpc-password" env:"STREAMER_RPC_PASSWORD" description:"Node RPC password"`
	RPCTimeout  time.Duration `long:"rpc-timeout" env:"STREAMER_RPC_TIMEOUT" description:"HTTP timeout for a single RPC request" default:"60s"`
	RPCRPS      int           `long:"rpc-rps" env:"STREAMER_RPC_RPS" description:"Max RPC HTTP requests per second, 0 disables the limit" default:"0"`
	Network     model.Network `long:"network" env:"STREAMER_NETWORK" description:"mainnet, testnet, regtest or signet" default:"mainnet"`

	Outputs    []string `long:"output" env:"STREAMER_OUTPUT" env-delim:"," description:"Output URI, repeatable: -, file://path, clickhouse://, postgres://, redis://" default:"-"`
	StartBlock int64    `long:"start-block" env:"STREAMER_START_BLOCK" description:"First block when no checkpoint exists, -1 for genesis" default:"-1"`
	EndBlock   int64    `long:"end-block" env:"STREAMER_END_BLOCK" description:"Stop after this block, -1 to follow the tip" default:"-1"`

	BatchSize      int    `long:"batch-size" env:"STREAMER_BATCH_SIZE" description:"Items per RPC batch request" default:"10"`
	BlockBatchSize uint64 `long:"block-batch-size" env:"STREAMER_BLOCK_BATCH_SIZE" description:"Blocks exported per sync iteration" default:"1"`
	MaxWorkers     int    `long:"max-workers" env:"STREAMER_MAX_WORKERS" description:"Concurrent RPC batches" default:"5"`
	MaxRetries     int    `long:"max-retries" env:"STREAMER_MAX_RETRIES" description:"Retries of a failed RPC batch" default:"5"`

	Lag                 uint64 `long:"lag" env:"STREAMER_LAG" description:"Blocks to stay behind the tip" default:"0"`
	PeriodSeconds       int    `long:"period-seconds" env:"STREAMER_PERIOD_SECONDS" description:"Idle wait once caught up" default:"10"`
	LastSyncedBlockFile string `long:"last-synced-block-file" env:"STREAMER_LAST_SYNCED_BLOCK_FILE" description:"Checkpoint file" default:"last_synced_block.txt"`
	EntityTypes         string `long:"entity-types" env:"STREAMER_ENTITY_TYPES" description:"Comma separated: block, transaction, trace" default:"block,transaction"`
	Enrich              bool   `long:"enrich" env:"STREAMER_ENRICH" description:"Copy previous output data onto transaction inputs"`
	RetryErrors         bool   `long:"retry-errors" env:"STREAMER_RETRY_ERRORS" description:"Retry a failed range instead of exiting"`

	CacheSizeMB    int           `long:"cache-size-mb" env:"STREAMER_CACHE_SIZE_MB" description:"In-process RPC response cache size, 0 disables it" default:"64"`
	CacheTTL       time.Duration `long:"cache-ttl" env:"STREAMER_CACHE_TTL" description:"RPC response cache expiry" default:"1h"`
	RedisCacheAddr string        `long:"redis-cache-addr" env:"STREAMER_REDIS_CACHE_ADDR" description:"Redis address for a shared RPC response cache"`

	ZMQBlockEndpoint string `long:"zmq-block-endpoint" env:"STREAMER_ZMQ_BLOCK_ENDPOINT" description:"Node zmqpubhashblock endpoint that wakes the idle wait"`
	MetricsAddr      string `long:"metrics-addr" env:"STREAMER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogLevel         string `long:"log-level" env:"STREAMER_LOG_LEVEL" description:"debug, info, warn or error" default:"info"`
}

func main() {
	cfg := config{}

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("utxo streamer failed", zap.Error(err))
	}
	logger.Info("utxo streamer stopped")
}

// newLogger writes to stderr so that the "-" output owns stdout.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	entityTypes, err := model.ParseItemTypes(cfg.EntityTypes)
	if err != nil {
		return err
	}
	mapper, err := bitcoin.NewMapper(cfg.Network)
	if err != nil {
		return fmt.Errorf("init mapper: %w", err)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	rpcOptions, closeCache, err := newRPCOptions(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	rpcConfig := rpc.Config{URL: cfg.ProviderURI, User: cfg.RPCUser, Password: cfg.RPCPassword, Timeout: cfg.RPCTimeout}
	tip, err := rpc.NewClient(rpcConfig, rpcOptions...)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}

	policy := retry.DefaultPolicy()
	policy.MaxAttempts = cfg.MaxRetries + 1
	executor := workerpool.NewExecutor[jobs.RPCClient](cfg.BatchSize, cfg.MaxWorkers, policy,
		func(context.Context) (jobs.RPCClient, error) {
			client, err := rpc.NewClient(rpcConfig, rpcOptions...)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		logger.Named("executor"),
	)

	output, err := exporter.New(ctx, cfg.Outputs, exporter.Config{
		Network:           cfg.Network,
		Metrics:           metrics.NewExporter(),
		ClickhouseMetrics: metrics.NewClickhouseRepository(cfg.Network),
	})
	if err != nil {
		return fmt.Errorf("init outputs: %w", err)
	}

	adapter, err := streamer.NewAdapter(streamer.AdapterConfig{EntityTypes: entityTypes, Enrich: cfg.Enrich},
		tip, executor, mapper, output, logger)
	if err != nil {
		return err
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQBlockEndpoint, logger)
	if err != nil {
		return err
	}

	s, err := streamer.NewStreamer(streamer.Config{
		StartBlock:     optionalBlock(cfg.StartBlock),
		EndBlock:       optionalBlock(cfg.EndBlock),
		Lag:            cfg.Lag,
		BlockBatchSize: cfg.BlockBatchSize,
		Period:         time.Duration(cfg.PeriodSeconds) * time.Second,
		RetryErrors:    cfg.RetryErrors,
	}, adapter, streamer.NewFileCheckpoint(cfg.LastSyncedBlockFile), metrics.NewStreamer(cfg.Network), logger,
		streamer.WithBlockSignal(blockSignal))
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// newRPCOptions builds the options shared by every RPC client: one HTTP transport, one rate
// limiter and one response cache for all workers.
func newRPCOptions(ctx context.Context, cfg config, logger *zap.Logger) ([]rpc.Option, func(), error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = cfg.MaxWorkers + 1

	options := []rpc.Option{
		rpc.WithHTTPClient(&http.Client{Timeout: cfg.RPCTimeout, Transport: transport}),
		rpc.WithMetrics(metrics.NewRPCClient(cfg.Network)),
		rpc.WithLogger(logger),
	}
	if cfg.RPCRPS > 0 {
		options = append(options, rpc.WithRateLimiter(ratelimit.New(cfg.RPCRPS)))
	}

	var local, remote rpc.Cache
	closeCache := func() {}
	if cfg.CacheSizeMB > 0 {
		local = rpc.NewFreeCache(cfg.CacheSizeMB, cfg.CacheTTL)
	}
	if cfg.RedisCacheAddr != "" {
		redisCache, err := rpc.NewRedisCache(ctx, cfg.RedisCacheAddr, "utxo-streamer:"+string(cfg.Network)+":", cfg.CacheTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis cache: %w", err)
		}
		remote = redisCache
		closeCache = func() {
			if err := redisCache.Close(); err != nil {
				logger.Warn("close redis cache", zap.Error(err))
			}
		}
	}
	switch {
	case local != nil && remote != nil:
		options = append(options, rpc.WithCache(rpc.NewTieredCache(local, remote)))
	case local != nil:
		options = append(options, rpc.WithCache(local))
	case remote != nil:
		options = append(options, rpc.WithCache(remote))
	}
	return options, closeCache, nil
}

func optionalBlock(v int64) *uint64 {
	if v < 0 {
		return nil
	}
	b := uint64(v)
	return &b
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
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

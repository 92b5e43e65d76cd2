package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seokit/config"
	"seokit/logging"
	"seokit/middleware/quota"
	quotadomain "seokit/middleware/quota/domain"
	quotainfra "seokit/middleware/quota/infra"
	"seokit/toolkit/httpapi"
	"seokit/toolkit/infra"
)

func serveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runServe(cmd.Context(), cfg, log)
		},
	}
}

type usageStore interface {
	quotadomain.UsageRecorder
	quotadomain.UsageReader
}

// openUsage escolhe o backend das estatísticas. O close devolvido nunca é nil.
func openUsage(ctx context.Context, cfg config.UsageConfig) (usageStore, func(), error) {
	switch cfg.Backend {
	case "none":
		return nil, func() {}, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			_ = rdb.Close()
			return nil, func() {}, fmt.Errorf("redis usage ping: %w", err)
		}

		store := quotainfra.NewRedisUsage(
			rdb,
			quotainfra.WithUsagePrefix(cfg.Prefix),
			quotainfra.WithUsageTTL(cfg.TTL),
			quotainfra.WithUsageBucket(cfg.Bucket),
			quotainfra.WithUsageTrackClients(cfg.TrackClients),
		)
		return store, func() { _ = rdb.Close() }, nil
	default:
		return quotainfra.NewMemoryUsage(quotainfra.WithTrackClients(cfg.TrackClients)), func() {}, nil
	}
}

func runServe(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	usage, closeUsage, err := openUsage(ctx, cfg.Usage)
	if err != nil {
		return err
	}
	defer closeUsage()

	kit := newToolkit(cfg)
	kit.Delay = cfg.SimDelay
	kit.Gen.Latency = cfg.SimDelay

	jobs := infra.NewJobStore(infra.WithJobTTL(cfg.Jobs.TTL), infra.WithMaxJobs(cfg.Jobs.Max))
	jobs.StartJanitor(ctx)

	monitors := infra.NewMonitorRegistry(cfg.Monitor.Max, cfg.Monitor.History)
	defer monitors.StopAll()

	toolOpts := quota.Options{
		ToolFn:             httpapi.ToolName,
		KeyHeader:          cfg.Quota.KeyHeader,
		TrustXForwardedFor: cfg.Quota.TrustXFF,
		RejectStatus:       http.StatusTooManyRequests,
		RetryAfter:         cfg.Quota.RetryAfter,
		AddQuotaHeaders:    cfg.Quota.AddHeaders,
		OnReject:           httpapi.QuotaRejected,
		Usage:              usage,
	}
	if cfg.Quota.Enabled {
		buckets := quotainfra.NewBuckets(cfg.Quota.RPS, cfg.Quota.Burst)
		buckets.StartJanitor(ctx)
		toolOpts.Store = buckets
	}

	deps := httpapi.Deps{
		Toolkit:            kit,
		Jobs:               jobs,
		Monitors:           monitors,
		MonitorMinInterval: cfg.Monitor.MinInterval,
		ToolMiddleware:     quota.Middleware(toolOpts),
		ClientIP:           func(r *http.Request) string { return quota.ClientIP(r, cfg.Quota.TrustXFF) },
		Logger:             log,
		BaseContext:        ctx,
		Usage:              usage,
	}

	h := httpapi.Handler(deps)
	h = quota.InFlight(quota.InFlightOptions{
		Max:            cfg.InFlight.Max,
		RejectStatus:   http.StatusServiceUnavailable,
		AcquireTimeout: cfg.InFlight.Timeout,
		OnReject:       httpapi.Overloaded,
	})(h)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	log.Info("seokit listening",
		zap.String("addr", cfg.ListenAddr),
		zap.Duration("sim_delay", cfg.SimDelay),
		zap.Bool("quota", cfg.Quota.Enabled),
		zap.Float64("quota_rps", cfg.Quota.RPS),
		zap.Int("quota_burst", cfg.Quota.Burst),
		zap.String("usage_backend", cfg.Usage.Backend),
		zap.Int("inflight_max", cfg.InFlight.Max),
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

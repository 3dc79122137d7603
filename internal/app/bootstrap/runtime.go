package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woozio/download-service/internal/adapters/entitlement"
	httpadapter "github.com/woozio/download-service/internal/adapters/http"
	"github.com/woozio/download-service/internal/adapters/ratelimit"
	s3adapter "github.com/woozio/download-service/internal/adapters/s3"
	"github.com/woozio/download-service/internal/application"
	"github.com/woozio/download-service/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	memLimiter *ratelimit.MemoryStore
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping download service", "http_port", cfg.HTTPPort, "bucket", cfg.S3Bucket)

	records, err := entitlement.LoadCatalogue(cfg.LicenseCataloguePath)
	if err != nil {
		return nil, fmt.Errorf("load license catalogue: %w", err)
	}
	store, err := entitlement.NewStore(records)
	if err != nil {
		return nil, fmt.Errorf("build entitlement store: %w", err)
	}
	logger.Info("license catalogue loaded", "licenses", store.Len())

	var limiter ports.RateLimitStore
	var memLimiter *ratelimit.MemoryStore
	cleanup := func(context.Context) {}
	if cfg.RedisURL != "" {
		redisClient, connErr := ratelimit.Connect(ctx, cfg.RedisURL)
		if connErr != nil {
			return nil, fmt.Errorf("connect redis: %w", connErr)
		}
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			_ = redisClient.Close()
			return nil, fmt.Errorf("connect redis: %w", pingErr)
		}
		limiter = ratelimit.NewRedisStore(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
		cleanup = func(context.Context) { _ = redisClient.Close() }
		logger.Info("using redis rate limit store")
	} else {
		memLimiter = ratelimit.NewMemoryStore(cfg.RateLimitWindow, cfg.RateLimitMax)
		limiter = memLimiter
	}

	signer, err := s3adapter.NewSigner(s3adapter.Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		ForcePathStyle:  cfg.S3ForcePathStyle,
		RequestTimeout:  cfg.SignTimeout,
	})
	if err != nil {
		cleanup(ctx)
		return nil, fmt.Errorf("init s3 signer: %w", err)
	}

	svc := application.NewService(application.Dependencies{
		Config:       application.Config{GrantTTL: cfg.GrantTTL},
		Entitlements: store,
		RateLimits:   limiter,
		Signer:       signer,
	})

	handler := httpadapter.NewHandler(svc)
	router := httpadapter.NewRouter(handler, httpadapter.RouterConfig{AllowedOrigins: cfg.CORSAllowedOrigins})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		memLimiter: memLimiter,
		cleanupFn:  cleanup,
	}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if r.memLimiter != nil {
		r.memLimiter.StartJanitor(ctx, 2*time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

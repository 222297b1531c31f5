package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"chaosshare/internal/cache"
	"chaosshare/internal/config"
	"chaosshare/internal/handler"
	"chaosshare/internal/metrics"
	custommiddleware "chaosshare/internal/middleware"
	"chaosshare/internal/repository"
	"chaosshare/internal/service"
	"chaosshare/internal/shareid"
	"chaosshare/internal/shortcode"
	"chaosshare/internal/validation"
)

// shareStore is what both repository drivers provide.
type shareStore interface {
	service.Store
	Stats(ctx context.Context, now time.Time) (repository.Stats, error)
	PoolStats() repository.PoolStats
	Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, sink, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("database ready", slog.String("driver", cfg.Database.Driver))

	ids, err := shareid.New()
	if err != nil {
		return fmt.Errorf("failed to create id codec: %w", err)
	}

	shareCache, err := cache.New(cfg.Cache.MaxSizePow2, cache.WithMaxTTL(cfg.Cache.MaxTTL))
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer shareCache.Close()

	prom := metrics.NewPrometheus()
	recorder := metrics.NewRecorder(sink, prom, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	go collectInfraMetrics(ctx, recorder, store, shareCache, logger)

	shareService := service.NewShareService(
		store,
		shortcode.New(),
		shareCache,
		recorder,
		logger,
		service.PolicyFromConfig(&cfg.Share),
	)
	shareValidator := validation.NewShareValidator(
		cfg.Validation.MaxParamsBytes,
		cfg.Share.DefaultTTLDays,
		cfg.Share.MaxTTLDays,
	)
	h := handler.New(shareService, shareValidator, ids, logger, recorder, cfg.App.BaseURL)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder, "/metrics", "/debug/pprof"))

	h.Register(e,
		custommiddleware.Auth(&cfg.Auth, logger),
		custommiddleware.RateLimit(&cfg.RateLimit, logger),
	)

	e.GET("/metrics", echo.WrapHandler(prom.Handler()), custommiddleware.MetricsAuth(cfg.Metrics.Secret))

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	servers, err := listen(cfg, e, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s server failed: %w", s.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var errs []error
		for _, s := range servers {
			if err := s.srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s server shutdown failed: %w", s.name, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func openStore(ctx context.Context, cfg *config.DatabaseConfig) (shareStore, metrics.Sink, error) {
	switch cfg.Driver {
	case "sqlite":
		repo, err := repository.NewSQLiteRepository(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create sqlite repository: %w", err)
		}
		return repo, nil, nil
	default:
		repo, err := repository.NewPostgresRepository(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create postgres repository: %w", err)
		}
		return repo, repo.Pool(), nil
	}
}

type server struct {
	name string
	srv  *http.Server
	ln   net.Listener
}

func newHTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func listen(cfg *config.Config, h http.Handler, logger *slog.Logger) ([]server, error) {
	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}
	servers := []server{{name: "http", srv: newHTTPServer(h), ln: httpListener}}

	if !cfg.TLS.Enabled {
		return servers, nil
	}

	httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
	logger.Info("starting HTTPS server",
		slog.String("addr", httpsAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	if err != nil {
		httpListener.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	httpsListener, err := net.Listen("tcp", httpsAddr)
	if err != nil {
		httpListener.Close()
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpsListener = netutil.LimitListener(httpsListener, cfg.Server.MaxConnections)
	}

	tlsListener := tls.NewListener(httpsListener, &tls.Config{
		MinVersion:       tls.VersionTLS13,
		Certificates:     []tls.Certificate{cert},
		CurvePreferences: []tls.CurveID{tls.X25519},
	})

	return append(servers, server{name: "https", srv: newHTTPServer(h), ln: tlsListener}), nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, store shareStore, shareCache *cache.ShareCache, logger *slog.Logger) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pool := store.PoolStats()
			cacheHits, cacheMisses, cacheRatio := shareCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			m := metrics.InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  pool.Acquired,
				PoolIdle:      pool.Idle,
				PoolTotal:     pool.Total,
				PoolMax:       pool.Max,
				CacheHits:     int64(cacheHits),
				CacheMisses:   int64(cacheMisses),
				CacheHitRatio: cacheRatio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			}

			stats, err := store.Stats(ctx, m.Time)
			if err != nil {
				logger.Warn("failed to collect share stats", slog.String("error", err.Error()))
			} else {
				m.SharesTotal = stats.Total
				m.SharesExpired = stats.Expired
			}

			recorder.RecordInfra(m)
		}
	}
}

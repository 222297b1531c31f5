// Command sweep deletes expired shares once and exits. Reads already treat
// expired shares as gone, so running it only reclaims space.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaosshare/internal/config"
	"chaosshare/internal/domain"
	"chaosshare/internal/repository"
	"chaosshare/internal/service"
)

// sweepStore is the part of a repository the sweep needs.
type sweepStore interface {
	service.Store
	Stats(ctx context.Context, now time.Time) (repository.Stats, error)
	Close()
}

type noCache struct{}

func (noCache) Get(string) (*domain.Share, bool) { return nil, false }
func (noCache) Set(*domain.Share, time.Duration) {}
func (noCache) Delete(string)                    {}

type logRecorder struct {
	logger *slog.Logger
}

func (r logRecorder) RecordBusiness(name string, value float64, _ map[string]string) {
	r.logger.Info("event", slog.String("name", name), slog.Float64("value", value))
}

type noCodes struct{}

func (noCodes) Generate() string { return "" }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := service.NewShareService(store, noCodes{}, noCache{}, logRecorder{logger: logger},
		slog.New(slog.NewTextHandler(io.Discard, nil)), service.PolicyFromConfig(&cfg.Share))

	start := time.Now()
	n, err := svc.SweepExpired(ctx)
	if err != nil {
		return err
	}

	stats, err := store.Stats(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to read share stats: %w", err)
	}

	logger.Info("sweep complete",
		slog.Int64("deleted", n),
		slog.Int64("remaining", stats.Total),
		slog.Duration("took", time.Since(start)))
	return nil
}

func open(ctx context.Context, cfg *config.DatabaseConfig) (sweepStore, error) {
	if cfg.Driver == "sqlite" {
		repo, err := repository.NewSQLiteRepository(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite repository: %w", err)
		}
		return repo, nil
	}
	repo, err := repository.NewPostgresRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres repository: %w", err)
	}
	return repo, nil
}

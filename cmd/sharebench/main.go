// Command sharebench drives share creation and public views against a
// running server and checks that no owner got more shares than the quota.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaosshare/cmd/sharebench/internal/attack"
	"chaosshare/cmd/sharebench/internal/config"
	"chaosshare/cmd/sharebench/internal/seed"
	appconfig "chaosshare/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.SeedPerOwner > cfg.Quota {
		return fmt.Errorf("SEED_PER_OWNER (%d) exceeds SHARE_QUOTA (%d)", cfg.SeedPerOwner, cfg.Quota)
	}

	owners, err := attack.NewOwners(cfg.Owners, &appconfig.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
	}, cfg.Duration+cfg.SeedTimeout+time.Hour)
	if err != nil {
		return err
	}

	var seeded map[string][]string
	if cfg.SeedPerOwner > 0 {
		seeded, err = seed.Run(ctx, cfg.BaseURL, owners, cfg.SeedPerOwner, cfg.RateLimitBypass, cfg.InsecureSkipVerify, cfg.SeedTimeout)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:         cfg.BaseURL,
		Owners:          owners,
		Seeded:          seeded,
		Quota:           cfg.Quota,
		Rate:            cfg.Rate,
		Duration:        cfg.Duration,
		CreateRatio:     cfg.CreateRatio,
		Type:            cfg.BenchType,
		RateLimitBypass: cfg.RateLimitBypass,
		Connections:     cfg.Owners * 4,
	})
}

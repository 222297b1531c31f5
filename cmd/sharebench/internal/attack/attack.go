package attack

import (
	"errors"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var ErrQuotaViolated = errors.New("owners exceeded the share quota")

type Config struct {
	BaseURL         string
	Owners          []Owner
	Seeded          map[string][]string
	Quota           int
	Rate            int
	Duration        time.Duration
	CreateRatio     float64
	Type            string
	RateLimitBypass string
	Connections     int
}

func Run(cfg *Config) error {
	var codes []string
	for _, c := range cfg.Seeded {
		codes = append(codes, c...)
	}

	var targeter vegeta.Targeter
	switch cfg.Type {
	case "create":
		targeter = CreateTargeter(cfg.BaseURL, cfg.Owners, cfg.RateLimitBypass)
	case "view":
		if len(codes) == 0 {
			return fmt.Errorf("view attack requires seeded codes")
		}
		targeter = ViewTargeter(cfg.BaseURL, codes, cfg.RateLimitBypass)
	case "mixed":
		if len(codes) == 0 {
			return fmt.Errorf("mixed attack requires seeded codes")
		}
		targeter = MixedTargeter(cfg.BaseURL, cfg.Owners, codes, cfg.CreateRatio, cfg.RateLimitBypass)
	default:
		return fmt.Errorf("unknown attack type: %s", cfg.Type)
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(-1),
		vegeta.KeepAlive(true),
		vegeta.Connections(max(1, cfg.Connections)),
		vegeta.Timeout(5*time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
	)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s owners=%d\n", cfg.Type, cfg.Rate, cfg.Duration, len(cfg.Owners))

	tally := NewTally()
	for owner, c := range cfg.Seeded {
		tally.AddSeeded(owner, len(c))
	}

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
		tally.Add(res)
	}
	metrics.Close()

	if err := vegeta.NewTextReporter(&metrics).Report(os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	if err := tally.Report(os.Stdout, cfg.Quota); err != nil {
		return err
	}

	if n := len(tally.Violations(cfg.Quota)); n > 0 {
		return fmt.Errorf("%w: %d", ErrQuotaViolated, n)
	}
	return nil
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Owners             int           `env:"OWNERS" envDefault:"50"`
	Quota              int           `env:"SHARE_QUOTA" envDefault:"10"`
	SeedPerOwner       int           `env:"SEED_PER_OWNER" envDefault:"2"`
	Rate               int           `env:"RATE" envDefault:"200"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	CreateRatio        float64       `env:"CREATE_RATIO" envDefault:"0.2"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"create"`
	JWTSecret          string        `env:"AUTH_JWT_SECRET,required"`
	JWTIssuer          string        `env:"AUTH_JWT_ISSUER"`
	JWTAudience        string        `env:"AUTH_JWT_AUDIENCE"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

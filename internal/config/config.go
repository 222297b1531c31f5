package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Share      ShareConfig
	Auth       AuthConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
	Metrics    MetricsConfig
	Pprof      PprofConfig
	TLS        TLSConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Driver     string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	Host       string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port       int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User       string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password   string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"POSTGRES_DB" envDefault:"chaosshare"`
	SSLMode    string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns   int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"chaosshare.db"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

type ShareConfig struct {
	Quota          int           `env:"SHARE_QUOTA" envDefault:"10"`
	Window         time.Duration `env:"SHARE_QUOTA_WINDOW" envDefault:"1h"`
	ResetGrace     time.Duration `env:"SHARE_RESET_GRACE" envDefault:"1s"`
	CodeAttempts   int           `env:"SHARE_CODE_ATTEMPTS" envDefault:"5"`
	TxAttempts     int           `env:"SHARE_TX_ATTEMPTS" envDefault:"3"`
	DefaultTTLDays int           `env:"SHARE_DEFAULT_TTL_DAYS" envDefault:"30"`
	MaxTTLDays     int           `env:"SHARE_MAX_TTL_DAYS" envDefault:"365"`
	PrecheckCode   bool          `env:"SHARE_PRECHECK_CODE" envDefault:"false"`
}

type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	Issuer    string `env:"AUTH_JWT_ISSUER"`
	Audience  string `env:"AUTH_JWT_AUDIENCE"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	MaxTTL      time.Duration `env:"CACHE_MAX_TTL" envDefault:"1m"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxParamsBytes     int    `env:"VALIDATION_MAX_PARAMS_BYTES" envDefault:"4096"`
	MaxRequestBodySize string `env:"VALIDATION_MAX_REQUEST_BODY_SIZE" envDefault:"16K"`
}

type MetricsConfig struct {
	Enabled        bool   `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int    `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int    `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int    `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	Secret         string `env:"METRICS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

var (
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrInvalidShare  = errors.New("invalid share configuration")
	ErrMissingSecret = errors.New("AUTH_JWT_SECRET must be set")
)

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return ErrMissingSecret
	}

	s := c.Share
	switch {
	case s.Quota < 1:
		return fmt.Errorf("%w: quota must be positive", ErrInvalidShare)
	case s.Window <= 0:
		return fmt.Errorf("%w: window must be positive", ErrInvalidShare)
	case s.CodeAttempts < 1 || s.TxAttempts < 1:
		return fmt.Errorf("%w: attempts must be positive", ErrInvalidShare)
	case s.DefaultTTLDays < 1 || s.DefaultTTLDays > s.MaxTTLDays:
		return fmt.Errorf("%w: default ttl must be within 1..max", ErrInvalidShare)
	}
	return nil
}

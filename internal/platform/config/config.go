package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full service configuration.
type Config struct {
	Server    Server
	Log       Log
	RateLimit RateLimit
	Redis     RedisConfig
	Batch     Batch
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// Log selects the slog handler.
type Log struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// RateLimit bounds requests per client IP on the /curp routes.
type RateLimit struct {
	Disabled bool
	Requests int
	Window   time.Duration
}

// RedisConfig enables the shared rate-limit store when URL is set.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Batch limits batch analysis requests.
type Batch struct {
	MaxItems    int
	Concurrency int
}

// Load reads configuration from the environment. Each file in envFiles is
// loaded first without overriding variables already set; with no files a
// .env in the working directory is loaded when present.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	p := parser{}
	cfg := Config{
		Server: Server{
			Addr:              p.str("CURP_ADDR", ":8080"),
			ReadHeaderTimeout: p.duration("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       p.duration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:      p.duration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:       p.duration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout:   p.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: Log{
			Level:  strings.ToLower(p.str("LOG_LEVEL", "info")),
			Format: strings.ToLower(p.str("LOG_FORMAT", "json")),
		},
		RateLimit: RateLimit{
			Disabled: p.boolean("RATE_LIMIT_DISABLED", false),
			Requests: p.integer("RATE_LIMIT_REQUESTS", 120),
			Window:   p.duration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Redis: RedisConfig{
			URL:          p.str("REDIS_URL", ""),
			PoolSize:     p.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Batch: Batch{
			MaxItems:    p.integer("BATCH_MAX_ITEMS", 100),
			Concurrency: p.integer("BATCH_CONCURRENCY", 8),
		},
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.RateLimit.Requests <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS must be positive"))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_WINDOW must be positive"))
	}
	if c.Batch.MaxItems <= 0 {
		errs = append(errs, errors.New("BATCH_MAX_ITEMS must be positive"))
	}
	if c.Batch.Concurrency <= 0 {
		errs = append(errs, errors.New("BATCH_CONCURRENCY must be positive"))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// parser collects conversion errors so every bad variable is reported at once.
type parser struct {
	errs []error
}

func (p *parser) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func (p *parser) boolean(key string, def bool) bool {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

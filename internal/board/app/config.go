package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/modboard/modboard/pkg/httpx"
)

type Config struct {
	Env                 string        `env:"ENV, default=dev"`              // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL, default=info"`       // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT, default=json"`      // json, text
	Port                int           `env:"PORT, default=8080"`            // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD, default=10s"`

	Board      BoardConfig
	RateLimits RateLimitsConfig
}

type BoardConfig struct {
	DatabaseFile    string        `env:"BOARD_DATABASE_FILE, default=board.db"`
	PepperFile      string        `env:"BOARD_PEPPER_FILE, default=pepper"`
	SigningKeyFile  string        `env:"BOARD_SIGNING_KEY_FILE, default=signing.pem"`
	Issuer          string        `env:"BOARD_ISSUER, default=modboard"`
	SessionTTL      time.Duration `env:"BOARD_SESSION_TTL, default=12h"`
	ReservedAccount string        `env:"BOARD_RESERVED_ACCOUNT, default=Member1@email.com"`
	Seed            bool          `env:"BOARD_SEED, default=true"` // Load sample users, modules and posts into an empty database
	SeedPassword    string        `env:"BOARD_SEED_PASSWORD, default=Password123!"`
}

// RateLimitsConfig overrides the httpx profiles, e.g. RATELIMIT_STRICT_REQUESTS=10.
type RateLimitsConfig struct {
	Strict   httpx.RateLimitConfig `env:", prefix=RATELIMIT_STRICT_"`
	Moderate httpx.RateLimitConfig `env:", prefix=RATELIMIT_MODERATE_"`
	Lenient  httpx.RateLimitConfig `env:", prefix=RATELIMIT_LENIENT_"`
}

// LoadConfig reads the process environment.
func LoadConfig(ctx context.Context) (Config, error) {
	return loadConfig(ctx, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	// Variables that are set replace the profile values; unset ones keep them.
	cfg := Config{
		RateLimits: RateLimitsConfig{
			Strict:   httpx.StrictLimit,
			Moderate: httpx.ModerateLimit,
			Lenient:  httpx.LenientLimit,
		},
	}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:           &cfg,
		Lookuper:         l,
		DefaultOverwrite: true,
	}); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Board.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("load config: BOARD_SESSION_TTL must be positive, got %s", cfg.Board.SessionTTL)
	}
	return cfg, nil
}

package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env                  string        `envconfig:"ENV" default:"dev"`                   // dev, staging, prod
	LogLevel             string        `envconfig:"LOG_LEVEL" default:"info"`            // debug, info, warn, error
	LogFormat            string        `envconfig:"LOG_FORMAT" default:"json"`           // json, text
	Port                 int           `envconfig:"PORT" default:"8080"`                 // HTTP server port
	ShutdownGracePeriod  time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"` // Graceful shutdown timeout
	HousekeepingInterval time.Duration `envconfig:"HOUSEKEEPING_INTERVAL" default:"10m"` // Expired session sweep interval
	StaticDir            string        `envconfig:"STATIC_DIR" default:"./static"`       // SPA build directory
	BcryptCost           int           `envconfig:"BCRYPT_COST" default:"12"`            // Clamped to at least 10
	HashConcurrency      int           `envconfig:"HASH_CONCURRENCY" default:"0"`        // 0 means GOMAXPROCS

	// Origins allowed to make credentialed API calls.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173,http://localhost:5174,http://localhost:8080"`

	Database DatabaseConfig `envconfig:"DATABASE"`
	Session  SessionConfig  `envconfig:"SESSION"`
	Redis    RedisConfig    `envconfig:"REDIS"`
}

type DatabaseConfig struct {
	Driver string `envconfig:"DRIVER" default:"sqlite"` // sqlite or postgres
	File   string `envconfig:"FILE" default:"todo.db"`  // sqlite database file
	URL    string `envconfig:"URL"`                     // postgres DSN
}

type SessionConfig struct {
	Store        string        `envconfig:"STORE" default:"memory"` // memory or redis
	CookieName   string        `envconfig:"COOKIE_NAME" default:"JSESSIONID"`
	CookieSecure bool          `envconfig:"COOKIE_SECURE" default:"false"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"24h"`
}

type RedisConfig struct {
	Address   string `envconfig:"ADDRESS" default:"localhost:6379"`
	Password  string `envconfig:"PASSWORD" default:""`
	Database  int    `envconfig:"DATABASE" default:"0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"todo:session:"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}

	for i := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimSpace(cfg.CORSAllowedOrigins[i])
	}
	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	cfg.Session.Store = strings.ToLower(cfg.Session.Store)

	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.File == "" {
			return fmt.Errorf("DATABASE_FILE is required for the sqlite driver")
		}
	case "postgres":
		if cfg.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver: %q", cfg.Database.Driver)
	}

	switch cfg.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session store: %q", cfg.Session.Store)
	}

	if cfg.Session.IdleTimeout <= 0 {
		return fmt.Errorf("invalid session idle timeout: %s", cfg.Session.IdleTimeout)
	}
	if cfg.HousekeepingInterval <= 0 {
		return fmt.Errorf("invalid housekeeping interval: %s", cfg.HousekeepingInterval)
	}
	return nil
}

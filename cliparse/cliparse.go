package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSecret string
	SessionTTL    time.Duration
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttlHours int

	fs := flag.NewFlagSet("anime-shelf", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.IntVar(&ttlHours, "session-ttl", 0, "Session lifetime in hours")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3324 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "anime.db"
		} else {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if ttlHours == 0 {
		if ttlStr := os.Getenv("SESSION_TTL_HOURS"); ttlStr != "" {
			hours, err := strconv.Atoi(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL_HOURS env variable")
			}
			ttlHours = hours
		} else {
			ttlHours = 24 // default
		}
	}
	if ttlHours < 0 {
		return Config{}, errors.New("session TTL must be positive")
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	AuthModeDemo  = "demo"
	AuthModeToken = "token"
)

type Config struct {
	Port           string
	GinMode        string
	AuthMode       string
	JWTSecret      string
	DemoUserID     string
	DemoUserEmail  string
	StoreDriver    string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config.Load(): No .env file found, using environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults and validation.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:          get("PORT", "8080"),
		GinMode:       get("GIN_MODE", "debug"),
		AuthMode:      strings.ToLower(get("AUTH_MODE", AuthModeDemo)),
		JWTSecret:     getenv("JWT_SECRET_KEY"),
		DemoUserID:    get("DEMO_USER_ID", "demo-user-123"),
		DemoUserEmail: get("DEMO_USER_EMAIL", "demo@example.com"),
		StoreDriver:   strings.ToLower(get("STORE_DRIVER", "memory")),
	}

	if origins := get("CORS_ORIGIN", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	rps, err := strconv.ParseFloat(get("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_RPS must be a positive number")
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(get("RATE_LIMIT_BURST", "20"))
	if err != nil || burst <= 0 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST must be a positive integer")
	}
	cfg.RateLimitBurst = burst

	switch cfg.AuthMode {
	case AuthModeDemo:
	case AuthModeToken:
		if cfg.JWTSecret == "" {
			return Config{}, fmt.Errorf("config: JWT_SECRET_KEY is required when AUTH_MODE=%s", AuthModeToken)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown AUTH_MODE %q", cfg.AuthMode)
	}

	switch cfg.StoreDriver {
	case "memory", "sqlite":
	default:
		return Config{}, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

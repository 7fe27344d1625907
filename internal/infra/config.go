package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	NvidiaAPIKey       string
	FrontendURL        string
	CORSOrigins        []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	LLMTimeout         time.Duration
	RateLimitPerWindow int
	RateLimitWindow    time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The NVIDIA key is deliberately not required here:
// its absence is a per-request failure with a stable code, not a startup
// error.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		NvidiaAPIKey:       os.Getenv("NVIDIA_API_KEY"),
		FrontendURL:        os.Getenv("FRONTEND_URL"),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		LLMTimeout:         time.Second * time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)),
		RateLimitPerWindow: getEnvInt("RATE_LIMIT_PER_WINDOW", 100),
		RateLimitWindow:    time.Minute * time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg.CORSOrigins = corsOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), cfg.FrontendURL)

	return cfg, nil
}

func corsOrigins(configured, frontendURL string) []string {
	seen := make(map[string]struct{})
	var origins []string
	add := func(origin string) {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" {
			return
		}
		if _, ok := seen[origin]; ok {
			return
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	for _, origin := range strings.Split(configured, ",") {
		add(origin)
	}
	add(frontendURL)
	return origins
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

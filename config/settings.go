package config

import (
	"log/slog"
	"os"
	"time"
)

// ValkeyConfig is shared by the page session store and the API result cache.
// An empty Address disables Valkey and the in-memory fallbacks are used.
type ValkeyConfig struct {
	Address  string
	Password string
	TLS      bool
}

func (v ValkeyConfig) Enabled() bool {
	return v.Address != ""
}

type WebConfig struct {
	Addr                string
	AnalysisAPIURL      string
	AnalysisTimeout     time.Duration
	SessionTTL          time.Duration
	HealthcheckInterval time.Duration
	Valkey              ValkeyConfig
}

type APIConfig struct {
	Addr          string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	CacheTTL      time.Duration
	Valkey        ValkeyConfig
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("[Config] Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return d
}

func getValkeyConfig() ValkeyConfig {
	return ValkeyConfig{
		Address:  os.Getenv("VALKEY_INIT_ADDRESS"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		TLS:      os.Getenv("VALKEY_TLS") == "true",
	}
}

func GetWebConfig() WebConfig {
	return WebConfig{
		Addr:                getEnv("WEB_ADDR", ":8080"),
		AnalysisAPIURL:      getEnv("ANALYSIS_API_URL", "http://localhost:5000"),
		AnalysisTimeout:     getDuration("ANALYSIS_TIMEOUT", 60*time.Second),
		SessionTTL:          getDuration("SESSION_TTL", 24*time.Hour),
		HealthcheckInterval: getDuration("HEALTHCHECK_INTERVAL", 15*time.Second),
		Valkey:              getValkeyConfig(),
	}
}

func GetAPIConfig() APIConfig {
	return APIConfig{
		Addr:          getEnv("API_ADDR", ":"+getEnv("PORT", "5000")),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		CacheTTL:      getDuration("CACHE_TTL", 24*time.Hour),
		Valkey:        getValkeyConfig(),
	}
}

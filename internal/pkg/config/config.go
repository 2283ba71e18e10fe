package config

import (
	"os"
	"time"
)

type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type BackendsConfig struct {
	DeepSeek DeepSeekConfig
	Gemini   GeminiConfig
}

type Config struct {
	Backends      BackendsConfig
	ServerPort    string
	MetricsPort   string
	PprofPort     string
	SessionSecret string
	SessionTTL    time.Duration
	OTLPEndpoint  string
}

// Load reads configuration from the environment. No backend key is
// required: without one the assistant runs on the simulator alone.
func Load() (*Config, error) {
	cfg := &Config{
		Backends: BackendsConfig{
			DeepSeek: DeepSeekConfig{
				APIKey:  os.Getenv("DEEPSEEK_API_KEY"),
				BaseURL: getEnvOrDefault("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
				Model:   getEnvOrDefault("DEEPSEEK_MODEL", "deepseek-chat"),
				Timeout: getDurationOrDefault("DEEPSEEK_TIMEOUT", 30*time.Second),
			},
			Gemini: GeminiConfig{
				APIKey: os.Getenv("GEMINI_API_KEY"),
				Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
			},
		},
		ServerPort:    getEnvOrDefault("SERVER_PORT", "8080"),
		MetricsPort:   getEnvOrDefault("METRICS_PORT", "9091"),
		PprofPort:     getEnvOrDefault("PPROF_PORT", "6060"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "tripmind-dev-secret"),
		SessionTTL:    getDurationOrDefault("SESSION_TTL", 30*time.Minute),
		OTLPEndpoint:  getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

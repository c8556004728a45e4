package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration for the summarizer service.
type Config struct {
	// Server
	Port           int           `env:"PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`

	// Request limits
	MaxBodySize   int64 `env:"MAX_BODY_SIZE" envDefault:"1048576"`    // 1MB in bytes
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// LLM
	LLMProvider       string        `env:"LLM_PROVIDER" envDefault:"gemini"` // "gemini" or "openai"
	LLMTemperature    float64       `env:"LLM_TEMPERATURE" envDefault:"0.2"`
	LLMMaxTokens      int           `env:"LLM_MAX_TOKENS" envDefault:"512"`
	LLMTimeout        time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	LLMBreakerEnabled bool          `env:"LLM_BREAKER_ENABLED" envDefault:"true"`

	// Gemini
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	// OpenAI
	OpenAIKey string `env:"OPENAI_API_KEY"`
	LLMModel  string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"RequestTimeout", cfg.RequestTimeout, 60 * time.Second},
		{"MaxBodySize", cfg.MaxBodySize, int64(1 << 20)},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(10 << 20)},
		{"LLMProvider", cfg.LLMProvider, "gemini"},
		{"LLMTemperature", cfg.LLMTemperature, 0.2},
		{"LLMMaxTokens", cfg.LLMMaxTokens, 512},
		{"LLMTimeout", cfg.LLMTimeout, 30 * time.Second},
		{"LLMBreakerEnabled", cfg.LLMBreakerEnabled, true},
		{"GeminiBaseURL", cfg.GeminiBaseURL, "https://generativelanguage.googleapis.com"},
		{"GeminiModel", cfg.GeminiModel, "gemini-2.0-flash"},
		{"LLMModel", cfg.LLMModel, "gpt-4o-mini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.LogLevel)
	}
	if cfg.LLMTimeout != 5*time.Second {
		t.Errorf("expected llm timeout 5s, got %v", cfg.LLMTimeout)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("expected gemini key to be read, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoadProviderOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_BREAKER_ENABLED", "false")

	cfg := Load()

	if cfg.LLMProvider != "openai" {
		t.Errorf("expected LLM provider 'openai', got %s", cfg.LLMProvider)
	}
	if cfg.LLMBreakerEnabled {
		t.Error("expected breaker to be disabled")
	}
}

package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"
	"github.com/prometheus/client_golang/prometheus"

	"text-summarizer/internal/config"
	"text-summarizer/internal/llm"
	"text-summarizer/internal/logger"
	"text-summarizer/internal/summarize"
)

// Deps bundles common runtime dependencies for the service.
type Deps struct {
	Config     config.Config
	Log        *slog.Logger
	LLM        llm.Gateway
	Summarizer *summarize.Service
}

// Build loads env, config, and shared components. Metrics are registered on
// reg.
func Build(reg prometheus.Registerer) (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	gateway, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config:     cfg,
		Log:        log,
		LLM:        gateway,
		Summarizer: summarize.NewService(gateway, log, summarize.NewPrometheusMetrics(reg)),
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Gateway, error) {
	var gateway llm.Gateway
	switch cfg.LLMProvider {
	case llm.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
		client, err := llm.NewGeminiClient(llm.GeminiConfig{
			BaseURL:     cfg.GeminiBaseURL,
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
			Timeout:     cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini LLM client", "model", cfg.GeminiModel)
		gateway = client
	case llm.ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       openai.ChatModel(cfg.LLMModel),
			Temperature: cfg.LLMTemperature,
			MaxTokens:   cfg.LLMMaxTokens,
			Timeout:     cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		gateway = client
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}

	if cfg.LLMBreakerEnabled {
		log.Info("llm circuit breaker enabled")
		return llm.NewBreakerGateway(gateway, llm.DefaultBreakerConfig(cfg.LLMProvider), log), nil
	}
	return gateway, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	ProviderOpenAI = "openai"

	defaultChatTimeout     = 30 * time.Second
	defaultChatTemperature = 0.2
)

// OpenAIConfig configures the Chat Completions client.
type OpenAIConfig struct {
	APIKey      string
	Model       openai.ChatModel
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	// BaseURL overrides api.openai.com. Optional.
	BaseURL string
}

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	cfg    OpenAIConfig
	client *openai.Client
}

// NewOpenAIClient builds a client with defaults against api.openai.com.
// SDK retries are disabled: a failed call surfaces immediately.
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.ChatModelGPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultChatTimeout
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIClient{
		cfg:    cfg,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string, maxSentences int) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	system := "You are a concise assistant."
	if maxSentences > 0 {
		system = sentenceHint(maxSentences)
	}
	temperature := c.cfg.Temperature
	if temperature == 0 {
		temperature = defaultChatTemperature
	}
	params := openai.ChatCompletionNewParams{
		Model:       c.cfg.Model,
		Messages:    buildMessages(system, prompt),
		Temperature: openai.Float(temperature),
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.cfg.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(reqCtx, params)
	if err != nil {
		return "", toProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: ProviderOpenAI, Message: "no choices returned"}
	}
	return resp.Choices[0].Message.Content, nil
}

func toProviderError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: ProviderOpenAI, StatusCode: apiErr.StatusCode, Message: apiErr.Message, Err: err}
	}
	return &ProviderError{Provider: ProviderOpenAI, Message: "request failed", Err: err}
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

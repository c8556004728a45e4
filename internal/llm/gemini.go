package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"

	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash"

	// Upper bound on a generateContent response body.
	maxGeminiResponseBytes = 2 << 20
)

// GeminiConfig configures the Gemini generateContent client.
type GeminiConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client
}

// GeminiClient calls the Gemini REST API directly.
type GeminiClient struct {
	cfg        GeminiConfig
	httpClient *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// NewGeminiClient builds a client; the API key is required.
func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultChatTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GeminiClient{cfg: cfg, httpClient: httpClient}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, maxSentences int) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.cfg.Temperature,
			MaxOutputTokens: c.cfg.MaxTokens,
		},
	}
	if maxSentences > 0 {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: sentenceHint(maxSentences)}}}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxGeminiResponseBytes))
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", &ProviderError{Provider: ProviderGemini, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return "", &ProviderError{Provider: ProviderGemini, StatusCode: resp.StatusCode, Message: "decode response", Err: err}
	}
	if out.Error != nil {
		code := out.Error.Code
		if code == 0 {
			code = resp.StatusCode
		}
		return "", &ProviderError{Provider: ProviderGemini, StatusCode: code, Message: strings.TrimSpace(out.Error.Status + " " + out.Error.Message)}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &ProviderError{Provider: ProviderGemini, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if len(out.Candidates) == 0 {
		return "", &ProviderError{Provider: ProviderGemini, StatusCode: resp.StatusCode, Message: "no candidates returned (check API key/model)"}
	}
	parts := out.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &ProviderError{Provider: ProviderGemini, StatusCode: resp.StatusCode, Message: "empty parts returned (check request)"}
	}

	var text strings.Builder
	for _, p := range parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// endpoint builds /v1beta/models/{model}:generateContent?key={apiKey}.
func (c *GeminiClient) endpoint() string {
	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	return strings.TrimRight(c.cfg.BaseURL, "/") +
		"/v1beta/models/" + url.PathEscape(c.cfg.Model) + ":generateContent?" + q.Encode()
}

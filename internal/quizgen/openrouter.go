package quizgen

import (
	"context"
	"net/http"
	"strings"
	"time"

	"quizai/internal/config"
	"quizai/internal/domain"
	"quizai/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Fixed sampling parameters for quiz generation. High enough temperature
// for varied questions, capped output large enough for 10 questions with
// explanations.
const (
	generationTemperature = 0.7
	maxOutputTokens       = 4000
)

// OpenRouterClient implements domain.TextGenerator against an
// OpenRouter-compatible chat-completions endpoint. The call is a single
// user-role message; no retries are performed, a failed call surfaces
// immediately.
type OpenRouterClient struct {
	llm    llms.Model
	model  string
	logger *zap.Logger
}

var _ domain.TextGenerator = (*OpenRouterClient)(nil)

// attributionTransport adds the OpenRouter app-attribution headers to
// every request.
type attributionTransport struct {
	referer string
	title   string
	base    http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// NewOpenRouterClient builds the generation client. A missing credential
// is a configuration error reported here, before any network attempt.
func NewOpenRouterClient(cfg config.OpenRouterConfig) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewConfigurationError("OPENROUTER_API_KEY is not configured")
	}

	httpClient := &http.Client{
		Timeout: 120 * time.Second,
		Transport: &attributionTransport{
			referer: cfg.Referer,
			title:   cfg.Title,
		},
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, domain.NewGenerationServiceError("Failed to create generation client", err)
	}

	return &OpenRouterClient{
		llm:    llm,
		model:  cfg.Model,
		logger: logger.Get(),
	}, nil
}

// Complete sends the prompt as one user message and returns the raw
// response text.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Info("Calling generation service",
		zap.String("model", c.model),
		zap.Int("prompt_chars", len(prompt)))

	response, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(generationTemperature),
		llms.WithMaxTokens(maxOutputTokens),
	)
	if err != nil {
		c.logger.Error("Generation service call failed", zap.Error(err))
		return "", domain.NewGenerationServiceError("OpenRouter API error", err)
	}

	if strings.TrimSpace(response) == "" {
		c.logger.Error("Generation service returned empty content", zap.String("model", c.model))
		return "", domain.NewEmptyResponseError()
	}

	return response, nil
}

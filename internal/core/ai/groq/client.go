// Package groq implements the completion collaborator against the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"recipe-chat/internal/core/ai/cache"
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://api.groq.com/openai/v1"

// ErrNoCredential is returned when no API key is configured. Callers treat
// this as a routing decision, not a failure.
var ErrNoCredential = errors.New("brak klucza API Groq w zmiennej GROQ_API_KEY")

// Options control one completion call.
type Options struct {
	// StrictJSON requests a json_object response format from the model.
	StrictJSON bool
}

// Client is the Groq chat completions client.
type Client struct {
	cfg    config.GroqConfig
	client *resty.Client
	cache  *cache.Service
}

// NewClient creates a Groq client from configuration. cacheSvc may be nil
// or disabled; responses are then never cached.
func NewClient(cfg config.GroqConfig, cacheSvc *cache.Service) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		cfg:    cfg,
		client: client,
		cache:  cacheSvc,
	}
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool {
	return c.cfg.HasCredential()
}

// Complete sends the messages and returns the model's text. It fails with
// ErrNoCredential when unconfigured, a transport error on non-2xx status and
// an error on a blank completion. No retries: a failed round-trip surfaces
// to the caller as-is.
func (c *Client) Complete(ctx context.Context, messages []common.ChatTurn, opts Options) (string, error) {
	if !c.HasCredential() {
		return "", fmt.Errorf("blad konfiguracji: %w", ErrNoCredential)
	}

	var cacheKey string
	if c.cache != nil && c.cache.Enabled() {
		cacheKey = cache.Key(messages, opts.StrictJSON)
		if cached, err := c.cache.Get(ctx, cacheKey); err == nil {
			common.LogDebug("completion cache hit", zap.String("model", c.cfg.Model))
			return cached, nil
		}
	}

	body := map[string]interface{}{
		"model":    c.cfg.Model,
		"messages": messages,
	}
	if opts.StrictJSON {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	common.LogCompletionCall(c.cfg.Model, time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("failed to send request to Groq: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		raw := resp.String()
		common.LogError("Groq returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.cfg.Model),
			zap.String("response", common.Truncate(raw, 300)),
		)
		return "", fmt.Errorf("blad Groq HTTP %d: %s", resp.StatusCode(), common.Truncate(raw, 300))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse Groq response: %w", err)
	}

	if len(result.Choices) == 0 || common.SafeString(result.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("blad AI: pusta odpowiedz modelu")
	}

	content := result.Choices[0].Message.Content
	if cacheKey != "" {
		if err := c.cache.Set(ctx, cacheKey, content); err != nil {
			common.LogWarn("failed to cache completion", zap.Error(err))
		}
	}
	return content, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.client.GetClient().CloseIdleConnections()
}

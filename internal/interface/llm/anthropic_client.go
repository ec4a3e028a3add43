package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"kitematch-service/pkg/logger"
)

// AnthropicClient implements usecase.ModelClient against the Anthropic
// messages API. All calls go through a circuit breaker so a flapping
// upstream stops costing latency; callers treat every error as a signal
// to fall back to local text.
type AnthropicClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

// NewAnthropicClient creates a new client. timeout bounds the HTTP call
// itself; per-request contexts can shorten it further.
func NewAnthropicClient(baseURL, apiKey, model string, timeout time.Duration, logger logger.Logger) *AnthropicClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "anthropic",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &AnthropicClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		logger:  logger,
	}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Complete implements usecase.ModelClient.
func (c *AnthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	reply, err := c.breaker.Execute(func() (interface{}, error) {
		return c.complete(ctx, system, user)
	})
	if err != nil {
		return "", err
	}
	return reply.(string), nil
}

func (c *AnthropicClient) complete(ctx context.Context, system, user string) (string, error) {
	payload := messageRequest{
		Model:     c.model,
		MaxTokens: 300,
		System:    system,
		Messages: []message{
			{Role: "user", Content: user},
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode >= 300 {
		c.logger.Warn("Model API returned error", "status", res.StatusCode)
		return "", fmt.Errorf("model api: status %d", res.StatusCode)
	}

	var out messageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Content) == 0 {
		return "", errors.New("model api: empty content")
	}
	return out.Content[0].Text, nil
}

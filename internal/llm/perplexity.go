package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	perplexityChatCompletionsURL = "https://api.perplexity.ai/chat/completions"
	defaultPerplexityModel       = "sonar"

	// upper cap on generated tokens; the API truncates the completion
	// rather than erroring when a website does not fit
	defaultMaxTokens = 10000

	// website generation is slow; the caller's context usually cuts in
	// well before this does
	defaultRequestTimeout = 300 * time.Second
)

// shared HTTP client for Perplexity API calls
var perplexityHTTPClient = &http.Client{
	Timeout: defaultRequestTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Perplexity API calls (10 requests/second with burst capacity of 5)
var perplexityRateLimiter = rate.NewLimiter(10, 5)

type PerplexityConfig struct {
	APIKey    string
	Model     string // e.g., "sonar"
	MaxTokens int
}

type PerplexityClient struct {
	config     PerplexityConfig
	httpClient *http.Client
	baseURL    string
}

func NewPerplexityClient(config PerplexityConfig) *PerplexityClient {
	if config.Model == "" {
		config.Model = defaultPerplexityModel
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}

	return &PerplexityClient{
		config:     config,
		httpClient: perplexityHTTPClient,
		baseURL:    perplexityChatCompletionsURL,
	}
}

func (c *PerplexityClient) Model() string {
	return c.config.Model
}

// GenerateText sends a single chat completion request and returns the raw
// completion text. One attempt, no retries; every failure surfaces as an
// *UpstreamError.
func (c *PerplexityClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := completionRequest{
		Model: c.config.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: c.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	// rate limiting
	if err := perplexityRateLimiter.Wait(ctx); err != nil {
		return "", &UpstreamError{Kind: KindTimeout, Detail: "rate limiter wait aborted", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", &UpstreamError{Kind: KindTimeout, Detail: "completion request timed out", Err: err}
		}

		return "", &UpstreamError{Kind: KindTransport, Detail: "failed to send request", Err: err}
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return "", &UpstreamError{
			Kind:   KindStatus,
			Status: resp.StatusCode,
			Detail: string(body),
		}
	}

	var apiResp completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", &UpstreamError{Kind: KindEnvelope, Detail: "failed to decode response", Err: err}
	}

	if len(apiResp.Choices) == 0 {
		return "", &UpstreamError{Kind: KindEnvelope, Detail: "no choices in response"}
	}

	content := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	if content == "" {
		return "", &UpstreamError{Kind: KindEnvelope, Detail: "no content received from API"}
	}

	return content, nil
}

// catches net.Error timeouts that don't wrap context.DeadlineExceeded
func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

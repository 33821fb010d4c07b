package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/da-project/server/internal/metrics"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Gemini API calls (10 requests/second with burst capacity of 5)
var geminiRateLimiter = rate.NewLimiter(10, 5)

type Config struct {
	APIKey  string
	Model   string // default model, e.g. "gemini-1.5-flash"
	BaseURL string // overridable for tests
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = DefaultModel
	}

	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}

	return &Client{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

func (c *Client) Model() string {
	return c.config.Model
}

// sends the prompt to the model and returns the generated text.
// An empty model falls back to the client's default.
func (c *Client) GenerateContent(ctx context.Context, model, prompt string) (text string, err error) {
	if model == "" {
		model = c.config.Model
	}

	if !IsSupportedModel(model) {
		return "", fmt.Errorf("unsupported model: %s", model)
	}

	defer func() { metrics.ObserveGeneration(model, err) }()

	reqBody := generateRequest{
		Contents: []requestContent{
			{Parts: []part{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	// rate limiting
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var generateResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generateResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(generateResp.Candidates) == 0 || len(generateResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return generateResp.Candidates[0].Content.Parts[0].Text, nil
}

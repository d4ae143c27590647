// Package ai answers protein questions through an OpenAI-compatible
// chat-completions endpoint (Groq by default).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultModel       = "llama-3.1-8b-instant"
	defaultTemperature = 0.4
	defaultAPIKeyEnv   = "GROQ_API_KEY"

	systemPrompt = "You are a biomedical AI assistant specializing in protein structure, mutations, and disease mechanisms"
)

// ErrNoAnswer is returned when the upstream replies successfully but
// carries no usable answer text.
var ErrNoAnswer = errors.New("ai: upstream returned no answer")

// Config tunes the upstream endpoint. Zero values fall back to the
// Groq defaults.
type Config struct {
	BaseURL     string
	Model       string
	Temperature float64
	APIKeyEnv   string
	HTTPClient  *http.Client
}

// Client calls the chat-completions API. The API key is read from the
// environment on every request, so a key added after startup is
// picked up without a restart.
type Client struct {
	baseURL     string
	model       string
	temperature float64
	apiKeyEnv   string
	httpClient  *http.Client
}

// NewClient builds a client from cfg, applying defaults for unset
// fields.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		apiKeyEnv:   cfg.APIKeyEnv,
		httpClient:  cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.temperature == 0 {
		c.temperature = defaultTemperature
	}
	if c.apiKeyEnv == "" {
		c.apiKeyEnv = defaultAPIKeyEnv
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Ask sends a question about the given protein context and returns
// the model's answer. The request is aborted when ctx is cancelled.
func (c *Client) Ask(ctx context.Context, question, proteinContext string) (string, error) {
	apiKey := os.Getenv(c.apiKeyEnv)
	if apiKey == "" {
		return "", fmt.Errorf("ai: %s is not set", c.apiKeyEnv)
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Protein Context:\n%s\n\nQuestion:\n%s", proteinContext, question)},
		},
		Temperature: c.temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.baseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: call upstream: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("ai: upstream status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("ai: upstream status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("ai: upstream status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrNoAnswer
	}
	return parsed.Choices[0].Message.Content, nil
}

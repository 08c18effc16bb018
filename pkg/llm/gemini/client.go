// Package gemini adapts the Google GenAI SDK to the llm.Client contract.
package gemini

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genai"
)

type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func New(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{apiKey: apiKey, model: model, timeout: timeout}
}

// Complete sends the prompt in a single GenerateContent call. Sampling
// parameters are left at provider defaults.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini api key is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// Client wraps the Gemini API for outfit suggestion and photo analysis.
// Construct once at startup and reuse; Close releases the underlying
// connection.
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a Gemini-backed client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{genai: gc, model: defaultModel}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.genai.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) ([]byte, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}
	var out []byte
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out = append(out, []byte(text)...)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unexpected response format (no text parts)")
	}
	return out, nil
}

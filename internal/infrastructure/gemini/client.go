// Package gemini generates optional flavor text for new matches. The client
// may be nil everywhere it is consumed; match creation never depends on it.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pawswipe/pawswipe-backend/internal/domain"
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.8)

	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateMatchBlurb writes a short playful line about why two animals are a
// good match.
func (c *Client) GenerateMatchBlurb(ctx context.Context, a, b *domain.Profile) (string, error) {
	prompt := fmt.Sprintf(
		"Two animals just matched on a pet matchmaking app.\n"+
			"Animal 1: %s, a %d year old %s.\n"+
			"Animal 2: %s, a %d year old %s.\n"+
			"Write one short, playful sentence about why they will get along. Output only the sentence.",
		a.Name, a.Age, a.Species,
		b.Name, b.Age, b.Species,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

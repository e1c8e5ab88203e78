// Package gemini provides a meeting-summary generator backed by the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"teamcall_backend/internal/feature/summary/usecase"
)

const (
	// DefaultModel is the Gemini model used for summary generation.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiGenerator generates meeting summaries with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ usecase.SummaryGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator using application
// default credentials. The environment variables GOOGLE_GENAI_USE_VERTEXAI,
// GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION, or GEMINI_API_KEY,
// configure the client.
func NewGeminiGenerator(ctx context.Context) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: DefaultModel}, nil
}

// Generate produces a summary text from the prompt.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}

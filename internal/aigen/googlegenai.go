package aigen

import (
	"context"
	"fmt"
	"image"
	"os"

	"google.golang.org/genai"
)

// geminiModels are tried in order; availability varies by account and
// region.
var geminiModels = []string{
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-2.0-flash-exp",
}

// GoogleGenAI generates images through the Gemini API. Requires
// GOOGLE_API_KEY or GEMINI_API_KEY. Image generation is geo-restricted
// in some regions.
type GoogleGenAI struct {
	apiKey string
}

// NewGoogleGenAI returns a Gemini provider, reading the API key from
// the environment.
func NewGoogleGenAI() *GoogleGenAI {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	return &GoogleGenAI{apiKey: key}
}

// Name implements Provider.
func (p *GoogleGenAI) Name() string { return "googlegenai" }

// Available implements Provider.
func (p *GoogleGenAI) Available() bool { return p.apiKey != "" }

// Generate implements Provider. Gemini ignores exact dimensions; the
// requested size only informs the prompt's aspect ratio hint.
func (p *GoogleGenAI) Generate(ctx context.Context, prompt string, width, height int) (image.Image, error) {
	if !p.Available() {
		return nil, fmt.Errorf("GOOGLE_API_KEY or GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"Image"},
	}
	promptText := fmt.Sprintf("Generate an image sized roughly %dx%d: %s", width, height, prompt)
	contents := genai.Text(promptText)

	var lastErr error
	for _, model := range geminiModels {
		response, err := client.Models.GenerateContent(ctx, model, contents, genConfig)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", model, err)
			continue
		}

		if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
			lastErr = fmt.Errorf("%s: no image data in response", model)
			continue
		}

		for _, part := range response.Candidates[0].Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return decodeImage(part.InlineData.Data)
			}
		}
		lastErr = fmt.Errorf("%s: no inline image data found in response", model)
	}

	return nil, fmt.Errorf("all gemini models failed: %w", lastErr)
}

package aigen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jmylchreest/brandkit/internal/render"
)

const openaiBaseURL = "https://api.openai.com/v1/images/generations"

const openaiTimeout = 120 * time.Second

// OpenAI generates images through the OpenAI Images API (gpt-image-1).
// Requires OPENAI_API_KEY.
type OpenAI struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOpenAI returns an OpenAI provider, reading the API key from the
// environment.
func NewOpenAI() *OpenAI {
	return &OpenAI{
		baseURL: openaiBaseURL,
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		client:  &http.Client{Timeout: openaiTimeout},
	}
}

// Name implements Provider.
func (p *OpenAI) Name() string { return "openai" }

// Available implements Provider.
func (p *OpenAI) Available() bool { return p.apiKey != "" }

type openaiRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	N      int    `json:"n"`
}

type openaiResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// Generate implements Provider. The API only supports a few fixed
// sizes, so the result is scaled to the requested dimensions when they
// differ.
func (p *OpenAI) Generate(ctx context.Context, prompt string, width, height int) (image.Image, error) {
	if !p.Available() {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	payload, err := json.Marshal(openaiRequest{
		Model:  "gpt-image-1",
		Prompt: prompt,
		Size:   supportedSize(width, height),
		N:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai HTTP %d: %s", resp.StatusCode, body)
	}

	var parsed openaiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Data) == 0 || parsed.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("no image data in response")
	}

	raw, err := base64.StdEncoding.DecodeString(parsed.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}

	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		img = render.Scale(img, width, height)
	}
	return img, nil
}

// supportedSize maps requested dimensions onto the sizes gpt-image-1
// accepts.
func supportedSize(width, height int) string {
	switch {
	case width > height:
		return "1536x1024"
	case height > width:
		return "1024x1536"
	default:
		return "1024x1024"
	}
}

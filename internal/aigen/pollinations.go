package aigen

import (
	"context"
	"fmt"
	"image"
	"net/url"
	"time"

	httputil "github.com/jmylchreest/brandkit/internal/util/http"
)

const pollinationsBaseURL = "https://image.pollinations.ai/prompt"

// pollinationsTimeout is generous because generation regularly takes
// tens of seconds.
const pollinationsTimeout = 90 * time.Second

// Pollinations generates images through pollinations.ai. Free, no API
// key, always available.
type Pollinations struct {
	baseURL string
	timeout time.Duration
}

// NewPollinations returns a ready Pollinations provider.
func NewPollinations() *Pollinations {
	return &Pollinations{
		baseURL: pollinationsBaseURL,
		timeout: pollinationsTimeout,
	}
}

// Name implements Provider.
func (p *Pollinations) Name() string { return "pollinations" }

// Available implements Provider. Pollinations needs no credentials.
func (p *Pollinations) Available() bool { return true }

// Generate implements Provider. The prompt travels in the URL path;
// dimensions and model ride as query parameters.
func (p *Pollinations) Generate(ctx context.Context, prompt string, width, height int) (image.Image, error) {
	reqURL := fmt.Sprintf("%s/%s?width=%d&height=%d&model=flux&nologo=true",
		p.baseURL, url.PathEscape(prompt), width, height)

	data, err := httputil.Fetch(ctx, reqURL, httputil.FetchOptions{Timeout: p.timeout})
	if err != nil {
		return nil, fmt.Errorf("pollinations request failed: %w", err)
	}

	return decodeImage(data)
}

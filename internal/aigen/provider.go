// Package aigen generates brand imagery through AI image providers.
// Providers share a small interface so the CLI can pick one explicitly
// or fall back through the availability chain.
package aigen

import (
	"context"
	"fmt"
	"image"
	"strings"
)

// Provider generates an image from a text prompt.
type Provider interface {
	// Name returns the provider's CLI-facing name.
	Name() string

	// Available reports whether the provider can be used right now
	// (API key present, etc.).
	Available() bool

	// Generate produces an image of roughly the requested dimensions.
	Generate(ctx context.Context, prompt string, width, height int) (image.Image, error)
}

// providers returns the known providers in auto-detect preference
// order: quality first, then free, then geo-restricted.
func providers() []Provider {
	return []Provider{
		NewOpenAI(),
		NewPollinations(),
		NewGoogleGenAI(),
	}
}

// Select returns the named provider, or the first available one when
// name is empty.
func Select(name string) (Provider, error) {
	if name != "" {
		for _, p := range providers() {
			if strings.EqualFold(p.Name(), name) {
				if !p.Available() {
					return nil, fmt.Errorf("provider %s is not available (missing API key?)", p.Name())
				}
				return p, nil
			}
		}
		return nil, fmt.Errorf("unknown provider %q (valid: openai, pollinations, googlegenai)", name)
	}

	for _, p := range providers() {
		if p.Available() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no AI providers available")
}

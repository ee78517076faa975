package brand

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/scrape"
)

// ErrInvalidURL marks a URL that cannot be parsed at all, as opposed to
// a page that merely failed to fetch.
var ErrInvalidURL = errors.New("invalid url")

// ExtractOptions configures identity extraction.
type ExtractOptions struct {
	// Timeout applies to the page fetch and each stylesheet fetch.
	Timeout time.Duration
}

// Extract runs the full identity pipeline against a URL: fetch the
// page, collect and classify its colours, and assemble the identity
// with scraped metadata. Fetch failures return an error; callers that
// want to degrade gracefully use Fallback.
func Extract(ctx context.Context, pageURL string, opts ExtractOptions) (Identity, error) {
	pageURL = NormalizeURL(pageURL)
	if _, err := url.ParseRequestURI(pageURL); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	page, err := scrape.Fetch(ctx, pageURL, scrape.Options{Timeout: opts.Timeout})
	if err != nil {
		return Identity{}, err
	}

	corpus, hints := colour.Collect(page.CSS)
	if page.ThemeColor != "" {
		corpus.Add(page.ThemeColor)
	}
	md := scrape.ExtractMetadata(page)

	palette := colour.Classify(corpus, hints)

	id := New(md.Name, md.Domain, palette, corpus.Colours())
	id.Font = md.Font
	id.Tagline = md.Tagline
	return id, nil
}

// Fallback builds a domain-derived identity with the default palette,
// for when the page cannot be fetched.
func Fallback(pageURL string) Identity {
	domain := Domain(NormalizeURL(pageURL))
	palette := colour.Classify(colour.NewCorpus(), nil)
	return New(scrape.NameFromDomain(domain), domain, palette, nil)
}

// NormalizeURL defaults the scheme to https when the caller omits it.
func NormalizeURL(raw string) string {
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}

// Domain extracts the host from a URL, stripping any www. prefix.
func Domain(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

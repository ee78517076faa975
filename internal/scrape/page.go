// Package scrape fetches a web page and gathers the raw material brand
// extraction works from: CSS text, meta tags and headline content.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	httputil "github.com/jmylchreest/brandkit/internal/util/http"
)

// maxStylesheets caps how many linked stylesheets are fetched per page.
const maxStylesheets = 3

// Options configures page fetching.
type Options struct {
	// Timeout applies to the page fetch and each stylesheet fetch.
	Timeout time.Duration

	// MaxStylesheets overrides the linked-stylesheet cap. Zero means
	// the default of 3.
	MaxStylesheets int
}

// Page holds everything extracted from a fetched document.
type Page struct {
	URL    string
	Domain string

	// CSS is all stylesheet text, concatenated in priority order:
	// <style> blocks, then inline style attributes, then linked
	// stylesheets. The order matters because it weights colour counts.
	CSS string

	// ThemeColor is the raw content of a theme-color meta tag, if any.
	ThemeColor string

	Title     string
	H1        string
	BodyStyle string

	// Meta maps meta tag name/property to content, for og:site_name,
	// og:description and description lookups.
	Meta map[string]string
}

// Fetch downloads a page, parses its markup and collects CSS from style
// blocks, inline styles and up to three linked stylesheets. Stylesheet
// fetch failures are skipped silently; a failure to fetch the page
// itself is returned so the caller can fall back to a domain-derived
// identity.
func Fetch(ctx context.Context, pageURL string, opts Options) (*Page, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	domain := strings.TrimPrefix(parsed.Hostname(), "www.")

	body, err := httputil.Fetch(ctx, pageURL, httputil.FetchOptions{Timeout: opts.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	page := &Page{
		URL:    pageURL,
		Domain: domain,
		Meta:   make(map[string]string),
	}

	var styleBlocks, inlineStyles []string
	var stylesheetHrefs []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "style":
				if text := nodeText(n); text != "" {
					styleBlocks = append(styleBlocks, text)
				}
			case "link":
				if isStylesheetLink(n) {
					if href := attr(n, "href"); href != "" {
						stylesheetHrefs = append(stylesheetHrefs, href)
					}
				}
			case "meta":
				key := attr(n, "property")
				if key == "" {
					key = attr(n, "name")
				}
				if content := attr(n, "content"); key != "" && content != "" {
					if _, seen := page.Meta[key]; !seen {
						page.Meta[key] = content
					}
				}
			case "title":
				if page.Title == "" {
					page.Title = strings.TrimSpace(nodeText(n))
				}
			case "h1":
				if page.H1 == "" {
					page.H1 = strings.TrimSpace(nodeText(n))
				}
			case "body":
				page.BodyStyle = attr(n, "style")
			}

			if style := attr(n, "style"); style != "" {
				inlineStyles = append(inlineStyles, style)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	page.ThemeColor = page.Meta["theme-color"]

	// Assemble CSS in priority order. Linked stylesheets come last and
	// are capped; failed fetches are skipped.
	cssParts := make([]string, 0, len(styleBlocks)+len(inlineStyles)+maxStylesheets)
	cssParts = append(cssParts, styleBlocks...)
	cssParts = append(cssParts, inlineStyles...)

	limit := opts.MaxStylesheets
	if limit <= 0 {
		limit = maxStylesheets
	}
	if len(stylesheetHrefs) > limit {
		stylesheetHrefs = stylesheetHrefs[:limit]
	}
	for _, href := range stylesheetHrefs {
		cssURL, err := resolveRef(parsed, href)
		if err != nil {
			continue
		}
		css, err := httputil.Fetch(ctx, cssURL, httputil.FetchOptions{Timeout: opts.Timeout})
		if err != nil {
			continue
		}
		cssParts = append(cssParts, string(css))
	}

	page.CSS = strings.Join(cssParts, "\n")
	return page, nil
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// attr returns the value of a named attribute, or an empty string.
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// isStylesheetLink reports whether a link element references a stylesheet.
func isStylesheetLink(n *html.Node) bool {
	rel := attr(n, "rel")
	for _, part := range strings.Fields(strings.ToLower(rel)) {
		if part == "stylesheet" {
			return true
		}
	}
	return false
}

// resolveRef resolves a possibly-relative stylesheet href against the
// page URL.
func resolveRef(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

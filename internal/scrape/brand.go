package scrape

import (
	"regexp"
	"strings"
)

// Metadata is the non-colour brand information extracted from a page.
type Metadata struct {
	Name    string
	Domain  string
	Tagline string
	Font    string
}

// maxTaglineLength filters out full-paragraph descriptions; anything
// longer is marketing copy, not a tagline.
const maxTaglineLength = 200

// maxHeadlineName filters out h1 elements that are sentences rather
// than brand names.
const maxHeadlineName = 50

// titleSeparators are tried in order; the first one present splits the
// page title into candidate parts.
var titleSeparators = []string{" | ", " - ", " — ", " :: ", " : "}

// genericStarters are words that mark a title part as boilerplate
// rather than a brand name.
var genericStarters = []string{"home", "welcome", "the", "official", "my"}

// ExtractMetadata derives the brand name, tagline and font from a
// fetched page. Name sources are tried in priority order: og:site_name,
// the cleaned page title, a short first h1, and finally the domain.
func ExtractMetadata(page *Page) Metadata {
	md := Metadata{Domain: page.Domain}

	if name := strings.TrimSpace(page.Meta["og:site_name"]); name != "" {
		md.Name = name
	} else if name := cleanTitle(page.Title); name != "" {
		md.Name = name
	} else if h1 := strings.TrimSpace(page.H1); h1 != "" && len(h1) < maxHeadlineName {
		md.Name = h1
	} else {
		md.Name = NameFromDomain(page.Domain)
	}

	md.Tagline = extractTagline(page)
	md.Font = extractFont(page)
	return md
}

// cleanTitle extracts a brand name from a page title by splitting on a
// separator and preferring the part that does not start with a generic
// word ("Home | Acme" yields "Acme").
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	parts := []string{title}
	for _, sep := range titleSeparators {
		if strings.Contains(title, sep) {
			parts = strings.Split(title, sep)
			break
		}
	}

	var candidates []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); len(p) > 1 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return title
	}

	for _, part := range candidates {
		lower := strings.ToLower(part)
		generic := false
		for _, g := range genericStarters {
			if strings.HasPrefix(lower, g) {
				generic = true
				break
			}
		}
		if !generic {
			return part
		}
	}
	return candidates[0]
}

// NameFromDomain converts a domain into a readable brand name:
// "my-cool-site.com" becomes "My Cool Site", "fairPrice.work" keeps its
// casing as "FairPrice".
func NameFromDomain(domain string) string {
	name := domain
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return ""
	}

	if strings.Contains(name, "-") {
		words := strings.Split(name, "-")
		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " ")
	}

	// Preserve existing interior casing (camelCase names).
	if strings.ToLower(name[1:]) != name[1:] {
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return capitalize(name)
}

// capitalize uppercases the first byte and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// extractTagline takes og:description or the meta description when
// short enough to read as a tagline.
func extractTagline(page *Page) string {
	for _, key := range []string{"og:description", "description"} {
		if desc := strings.TrimSpace(page.Meta[key]); desc != "" && len(desc) < maxTaglineLength {
			return desc
		}
	}
	return ""
}

var (
	inlineFontRe = regexp.MustCompile(`(?i)font-family:\s*([^;]+)`)
	bodyFontRe   = regexp.MustCompile(`(?is)(?:body|html)\s*\{[^}]*font-family:\s*([^;}]+)`)
	varFontRe    = regexp.MustCompile(`(?i)--font-(?:family|primary|main):\s*([^;]+)`)
)

// extractFont finds the page's primary font family: inline body style
// first, then a body/html rule, then a --font-* custom property.
func extractFont(page *Page) string {
	if page.BodyStyle != "" {
		if m := inlineFontRe.FindStringSubmatch(page.BodyStyle); m != nil {
			return firstFont(m[1])
		}
	}
	if m := bodyFontRe.FindStringSubmatch(page.CSS); m != nil {
		return firstFont(m[1])
	}
	if m := varFontRe.FindStringSubmatch(page.CSS); m != nil {
		return firstFont(m[1])
	}
	return ""
}

// firstFont takes the first family from a font stack and strips quotes.
func firstFont(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

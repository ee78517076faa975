package colour

import (
	"regexp"
)

// Patterns used to pull colour values out of CSS text. Hex literals are
// word-bounded so longer hex-like tokens (ids, hashes) are skipped.
var (
	hexLiteralRe  = regexp.MustCompile(`#[0-9a-fA-F]{3,6}\b`)
	rgbLiteralRe  = regexp.MustCompile(`rgba?\s*\(\s*\d+\s*,\s*\d+\s*,\s*\d+[^)]*\)`)
	customPropRe  = regexp.MustCompile(`--[\w-]+:\s*([#\w(),.%\s]+);`)
	semanticHexRe = `[^:]*:\s*(#[0-9a-fA-F]{3,6})`
)

// Semantic custom-property patterns. Only hex values count; the first
// match in document order wins for each role.
var semanticPatterns = []struct {
	role Role
	re   *regexp.Regexp
}{
	{RolePrimary, regexp.MustCompile(`(?i)--(?:color-)?primary` + semanticHexRe)},
	{RoleAccent, regexp.MustCompile(`(?i)--(?:color-)?(?:accent|secondary|highlight)` + semanticHexRe)},
	{RoleBackground, regexp.MustCompile(`(?i)--(?:color-)?(?:background|bg)` + semanticHexRe)},
}

// Role identifies a palette slot that a semantic CSS variable can claim.
type Role string

// Palette roles recognised in semantic custom-property names.
const (
	RolePrimary    Role = "primary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
)

// SemanticHints maps palette roles to colours claimed by semantic CSS
// custom properties (e.g. --color-primary). Values are canonical hex.
type SemanticHints map[Role]string

// Collect scans CSS (or any text) for colour values and returns the
// corpus of normalized colours plus any semantic role hints. It is a
// pure text transform with no network or DOM dependencies.
func Collect(text string) (*Corpus, SemanticHints) {
	corpus := NewCorpus()

	for _, m := range hexLiteralRe.FindAllString(text, -1) {
		corpus.Add(m)
	}

	for _, m := range rgbLiteralRe.FindAllString(text, -1) {
		corpus.Add(m)
	}

	// Custom property values can repeat colours already seen above;
	// that is intentional, the duplicates weight the counts.
	for _, m := range customPropRe.FindAllStringSubmatch(text, -1) {
		corpus.Add(m[1])
	}

	hints := make(SemanticHints)
	for _, p := range semanticPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			if hex := Normalize(m[1]); hex != "" {
				hints[p.role] = hex
			}
		}
	}

	return corpus, hints
}

// Package brand models the identity extracted from a website: its name,
// colours and typography, ready for asset rendering.
package brand

import (
	"regexp"
	"strings"

	"github.com/jmylchreest/brandkit/internal/colour"
)

// Identity is the complete brand profile assembled from scraping and
// colour classification.
type Identity struct {
	Name    string   `json:"name"`
	Domain  string   `json:"domain"`
	Colours []string `json:"colors"`

	Primary    string `json:"primary_color"`
	Accent     string `json:"accent_color"`
	Background string `json:"background_color"`
	Text       string `json:"text_color"`

	Theme   colour.Theme `json:"theme"`
	Font    string       `json:"font_family,omitempty"`
	Tagline string       `json:"tagline,omitempty"`
}

// New builds an identity from a brand name, domain and classified
// palette.
func New(name, domain string, palette colour.BrandPalette, colours []string) Identity {
	return Identity{
		Name:       name,
		Domain:     domain,
		Colours:    colours,
		Primary:    palette.Primary,
		Accent:     palette.Accent,
		Background: palette.Background,
		Text:       palette.Text,
		Theme:      palette.Theme,
	}
}

// Palette returns the identity's colour slots as a BrandPalette.
func (id Identity) Palette() colour.BrandPalette {
	return colour.BrandPalette{
		Primary:    id.Primary,
		Accent:     id.Accent,
		Background: id.Background,
		Text:       id.Text,
		Theme:      id.Theme,
	}
}

var (
	nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9 ]+`)
	camelRe    = regexp.MustCompile(`[A-Z][a-z]*`)
)

// Initials derives a two-letter monogram for text logos: "Fair Price"
// and "FairPrice" both yield "FP". Single lowercase words use their
// first two characters; an empty name yields "??".
func (id Identity) Initials() string {
	clean := nonAlnumRe.ReplaceAllString(id.Name, "")

	words := strings.Fields(clean)
	if len(words) >= 2 {
		return strings.ToUpper(words[0][:1] + words[len(words)-1][:1])
	}

	if camel := camelRe.FindAllString(clean, -1); len(camel) >= 2 {
		return strings.ToUpper(camel[0][:1] + camel[len(camel)-1][:1])
	}

	if len(clean) >= 2 {
		return strings.ToUpper(clean[:2])
	}
	if clean == "" {
		return "??"
	}
	return strings.ToUpper(clean)
}

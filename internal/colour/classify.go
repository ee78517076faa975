package colour

// Classification thresholds. Luminance cutoffs follow WCAG relative
// luminance; the distance thresholds are Euclidean RGB distances.
const (
	// VeryDarkLuminance marks colours counted toward a dark theme.
	VeryDarkLuminance = 0.1
	// VeryLightLuminance marks colours counted toward a light theme.
	VeryLightLuminance = 0.9
	// GrayscaleTolerance is the maximum channel spread of a grayscale colour.
	GrayscaleTolerance = 10
	// BackgroundDistance is the minimum distance from the background for a
	// colour to count as a brand (chromatic) candidate.
	BackgroundDistance = 50
	// AccentDistance is the minimum distance between primary and accent.
	AccentDistance = 30
)

// Theme describes whether a palette reads as light or dark overall.
type Theme string

// Palette themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// BrandPalette is the classified brand colour set.
type BrandPalette struct {
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Theme      Theme  `json:"theme"`
}

// DefaultPalette is the fallback used when a document yields no colours.
func DefaultPalette() BrandPalette {
	return BrandPalette{
		Primary:    "#333333",
		Accent:     "#666666",
		Background: "#ffffff",
		Text:       "#000000",
		Theme:      ThemeLight,
	}
}

// Classify derives a brand palette from a colour corpus and any semantic
// hints. It never fails: an empty corpus yields the default palette, and
// degenerate corpora (single colour, all grayscale) fall back slot by
// slot. Semantic hints override the heuristic picks unconditionally.
func Classify(corpus *Corpus, hints SemanticHints) BrandPalette {
	if corpus == nil || corpus.Len() == 0 {
		p := DefaultPalette()
		applyHints(&p, hints)
		return p
	}

	colours := corpus.Colours()

	type entry struct {
		hex string
		rgb RGB
		lum float64
	}
	entries := make([]entry, 0, len(colours))
	for _, hex := range colours {
		rgb, err := ParseHex(hex)
		if err != nil {
			continue
		}
		entries = append(entries, entry{hex: hex, rgb: rgb, lum: Luminance(rgb)})
	}

	// Theme: weigh very dark against very light by occurrence count.
	var darkCount, lightCount int
	var haveDark, haveLight bool
	for _, e := range entries {
		if e.lum < VeryDarkLuminance {
			darkCount += corpus.Count(e.hex)
			haveDark = true
		} else if e.lum > VeryLightLuminance {
			lightCount += corpus.Count(e.hex)
			haveLight = true
		}
	}
	theme := ThemeLight
	if darkCount > lightCount || (haveDark && !haveLight) {
		theme = ThemeDark
	}

	// Background: the extreme colour on the theme's side. Dark themes
	// take the darkest of the very dark colours, light themes the
	// lightest of the very light ones; failing either, the global
	// extreme for the theme.
	var background entry
	found := false
	for _, e := range entries {
		if theme == ThemeDark && e.lum < VeryDarkLuminance {
			if !found || e.lum < background.lum {
				background = e
				found = true
			}
		} else if theme == ThemeLight && e.lum > VeryLightLuminance {
			if !found || e.lum > background.lum {
				background = e
				found = true
			}
		}
	}
	if !found {
		background = entries[0]
		for _, e := range entries[1:] {
			if theme == ThemeDark && e.lum < background.lum {
				background = e
			} else if theme == ThemeLight && e.lum > background.lum {
				background = e
			}
		}
	}

	// Brand candidates: colours with hue, standing apart from the
	// background.
	var chromatic []entry
	for _, e := range entries {
		if IsGrayscale(e.rgb, GrayscaleTolerance) {
			continue
		}
		if Distance(e.rgb, background.rgb) <= BackgroundDistance {
			continue
		}
		chromatic = append(chromatic, e)
	}

	// Primary: the most frequent brand candidate. Ties resolve to the
	// earliest seen, since the scan keeps the first maximum.
	var primary string
	if len(chromatic) > 0 {
		best := chromatic[0]
		for _, e := range chromatic[1:] {
			if corpus.Count(e.hex) > corpus.Count(best.hex) {
				best = e
			}
		}
		primary = best.hex
	} else {
		// No chromatic colours at all: most frequent non-background.
		bestCount := -1
		for _, e := range entries {
			if e.hex == background.hex {
				continue
			}
			if c := corpus.Count(e.hex); c > bestCount {
				primary = e.hex
				bestCount = c
			}
		}
		if primary == "" {
			primary = "#333333"
		}
	}

	// Accent: the most saturated candidate that stands apart from the
	// primary. Degenerate corpora reuse the primary.
	accent := ""
	primaryRGB, _ := ParseHex(primary)
	bestSat := -1.0
	for _, e := range chromatic {
		if e.hex == primary {
			continue
		}
		if Distance(e.rgb, primaryRGB) <= AccentDistance {
			continue
		}
		if s := Saturation(e.rgb); s > bestSat {
			accent = e.hex
			bestSat = s
		}
	}
	if accent == "" {
		accent = primary
	}

	text := "#000000"
	if theme == ThemeDark {
		text = "#ffffff"
	}

	p := BrandPalette{
		Primary:    primary,
		Accent:     accent,
		Background: background.hex,
		Text:       text,
		Theme:      theme,
	}
	applyHints(&p, hints)
	return p
}

// applyHints overrides palette slots with semantic hint colours. A
// background hint recomputes theme and text to stay readable.
func applyHints(p *BrandPalette, hints SemanticHints) {
	if hex, ok := hints[RolePrimary]; ok {
		p.Primary = hex
	}
	if hex, ok := hints[RoleAccent]; ok {
		p.Accent = hex
	}
	if hex, ok := hints[RoleBackground]; ok {
		p.Background = hex
		if rgb, err := ParseHex(hex); err == nil {
			if Luminance(rgb) < 0.5 {
				p.Theme = ThemeDark
				p.Text = "#ffffff"
			} else {
				p.Theme = ThemeLight
				p.Text = "#000000"
			}
		}
	}
}

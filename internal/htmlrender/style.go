// Package htmlrender draws brand assets by rendering HTML/CSS in a
// headless browser. It produces richer output than the raster renderer
// (layered gradients, glow, text shadows) at the cost of needing a
// Chrome install.
package htmlrender

import (
	"fmt"
	"sort"
	"strings"
)

// StyleConfig tunes the HTML templates. The zero value is not useful;
// start from DefaultStyle or a mood preset.
type StyleConfig struct {
	// Glow scales text glow intensity (0 none, 2 strong).
	Glow float64
	// Depth scales shadow depth (0 flat, 2 deep).
	Depth float64
	// Decoration scales background decoration opacity (0 none).
	Decoration float64
	// GradientAngle is the base background gradient angle in degrees.
	GradientAngle int

	// Font is a Google Fonts family name.
	Font       string
	FontWeight int

	ShowAccentLine bool
	ShowBottomBar  bool
	ShowBlobs      bool
	ShowGlow       bool

	// Effect names the background effect; see Effects.
	Effect string
}

// DefaultStyle returns the baseline style.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Glow:           1.0,
		Depth:          1.0,
		Decoration:     1.0,
		GradientAngle:  160,
		Font:           "Inter",
		FontWeight:     800,
		ShowAccentLine: true,
		ShowBottomBar:  true,
		ShowBlobs:      true,
		ShowGlow:       true,
		Effect:         "aurora",
	}
}

// Effects maps background effect names to their descriptions.
var Effects = map[string]string{
	"aurora":    "Smooth radial gradient blobs (default)",
	"mesh":      "Multi-point mesh gradient blend",
	"noise":     "Grainy textured gradient",
	"waves":     "Layered SVG wave curves",
	"spotlight": "Dramatic corner lighting",
	"minimal":   "Clean simple gradient",
	"glass":     "Glassmorphism with blur",
	"dots":      "Subtle dot pattern overlay",
	"diagonal":  "Bold diagonal color split",
	"geometric": "Subtle geometric grid pattern",
}

// EffectNames returns the effect names in sorted order.
func EffectNames() []string {
	names := make([]string, 0, len(Effects))
	for name := range Effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// moodPresets are named style bundles selectable from the CLI.
var moodPresets = map[string]StyleConfig{
	"default": DefaultStyle(),
	"minimal": preset(0.2, 0.3, 0.3, "minimal"),
	"bold":    preset(1.5, 1.3, 1.2, "spotlight"),
	"elegant": preset(0.6, 0.5, 0.8, "mesh"),
	"neon":    preset(2.0, 0.8, 1.5, "aurora"),
}

func preset(glow, depth, decoration float64, effect string) StyleConfig {
	s := DefaultStyle()
	s.Glow = glow
	s.Depth = depth
	s.Decoration = decoration
	s.Effect = effect
	return s
}

// StyleFor resolves a mood preset and an optional effect override into
// a StyleConfig. Empty mood means the default preset; empty effect
// keeps the preset's effect.
func StyleFor(mood, effect string) (StyleConfig, error) {
	if mood == "" {
		mood = "default"
	}
	style, ok := moodPresets[strings.ToLower(mood)]
	if !ok {
		return StyleConfig{}, fmt.Errorf("unknown mood %q (valid: default, minimal, bold, elegant, neon)", mood)
	}

	if effect != "" {
		effect = strings.ToLower(effect)
		if _, ok := Effects[effect]; !ok {
			return StyleConfig{}, fmt.Errorf("unknown background effect %q (valid: %s)", effect, strings.Join(EffectNames(), ", "))
		}
		style.Effect = effect
	}
	return style, nil
}

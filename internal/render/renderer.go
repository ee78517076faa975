// Package render draws brand assets (logos, favicons, OG images) from a
// classified brand identity.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

// Style selects a logo drawing style.
type Style string

// Logo styles.
const (
	StyleMinimal   Style = "minimal"
	StyleGradient  Style = "gradient"
	StyleGeometric Style = "geometric"
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleMinimal, StyleGradient, StyleGeometric:
		return Style(s), nil
	}
	return "", fmt.Errorf("unknown style %q (valid: minimal, gradient, geometric)", s)
}

// Renderer draws assets for one brand identity.
type Renderer struct {
	identity brand.Identity

	primary    colour.RGB
	accent     colour.RGB
	background colour.RGB
	text       colour.RGB
}

// New builds a renderer from an identity. Colour slots that fail to
// parse fall back to the default palette values.
func New(id brand.Identity) *Renderer {
	defaults := colour.DefaultPalette()
	return &Renderer{
		identity:   id,
		primary:    parseOr(id.Primary, defaults.Primary),
		accent:     parseOr(id.Accent, defaults.Accent),
		background: parseOr(id.Background, defaults.Background),
		text:       parseOr(id.Text, defaults.Text),
	}
}

func parseOr(hex, fallback string) colour.RGB {
	if rgb, err := colour.ParseHex(hex); err == nil {
		return rgb
	}
	rgb, _ := colour.ParseHex(fallback)
	return rgb
}

// Logo draws a square logo at the given size in the given style.
func (r *Renderer) Logo(size int, style Style) (image.Image, error) {
	switch style {
	case StyleGradient:
		return r.gradientLogo(size)
	case StyleGeometric:
		return r.geometricLogo(size), nil
	default:
		return r.minimalLogo(size)
	}
}

// minimalLogo draws the brand initials on a rounded rectangle in the
// primary colour.
func (r *Renderer) minimalLogo(size int) (image.Image, error) {
	dc := gg.NewContext(size, size)

	padding := float64(size) / 10
	radius := float64(size) / 5

	dc.SetColor(r.primary.Color())
	dc.DrawRoundedRectangle(padding, padding, float64(size)-2*padding, float64(size)-2*padding, radius)
	dc.Fill()

	face, err := boldFace(float64(size) * 0.45)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	defer face.Close()
	dc.SetFontFace(face)

	// Initials take the accent colour when it stands out against the
	// primary, otherwise the theme text colour.
	if channelContrast(r.primary, r.accent) {
		dc.SetColor(r.accent.Color())
	} else {
		dc.SetColor(r.text.Color())
	}
	dc.DrawStringAnchored(r.identity.Initials(), float64(size)/2, float64(size)/2, 0.5, 0.5)

	return dc.Image(), nil
}

// gradientLogo draws a diagonal primary-to-accent gradient with white
// initials.
func (r *Renderer) gradientLogo(size int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			factor := float64(x+y) / float64(2*size)
			img.Set(x, y, blend(r.primary, r.accent, factor))
		}
	}

	dc := gg.NewContextForRGBA(img)
	face, err := boldFace(float64(size) * 0.45)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	defer face.Close()
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(r.identity.Initials(), float64(size)/2, float64(size)/2, 0.5, 0.5)

	return dc.Image(), nil
}

// geometricLogo draws three overlapping translucent circles.
func (r *Renderer) geometricLogo(size int) image.Image {
	dc := gg.NewContext(size, size)

	center := float64(size) / 2
	radius := float64(size) / 3

	// The third circle reuses the primary when the background is too
	// dark to show up.
	third := color.NRGBA{R: r.background.R, G: r.background.G, B: r.background.B, A: 180}
	if int(r.background.R)+int(r.background.G)+int(r.background.B) <= 100 {
		third = color.NRGBA{R: r.primary.R, G: r.primary.G, B: r.primary.B, A: 100}
	}

	circles := []struct {
		dx, dy float64
		col    color.Color
	}{
		{-radius / 2, 0, color.NRGBA{R: r.primary.R, G: r.primary.G, B: r.primary.B, A: 180}},
		{radius / 2, 0, color.NRGBA{R: r.accent.R, G: r.accent.G, B: r.accent.B, A: 180}},
		{0, -radius / 2, third},
	}

	for _, c := range circles {
		dc.SetColor(c.col)
		dc.DrawCircle(center+c.dx, center+c.dy, radius)
		dc.Fill()
	}

	return dc.Image()
}

// OGImage draws an Open Graph banner: background blended toward the
// accent, the brand name centered, an optional tagline, and an accent
// bar along the bottom.
func (r *Renderer) OGImage(width, height int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		factor := float64(y) / float64(height) * 0.3
		row := blend(r.background, r.accent, factor)
		for x := 0; x < width; x++ {
			img.Set(x, y, row)
		}
	}

	dc := gg.NewContextForRGBA(img)

	nameFace, err := boldFace(float64(height) / 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	defer nameFace.Close()

	dc.SetFontFace(nameFace)
	dc.SetColor(r.text.Color())
	nameY := float64(height)/2 - 30
	dc.DrawStringAnchored(r.identity.Name, float64(width)/2, nameY, 0.5, 0.5)

	if tagline := r.identity.Tagline; tagline != "" {
		if len(tagline) > 80 {
			tagline = tagline[:80]
		}
		tagFace, err := regularFace(float64(height) / 15)
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
		defer tagFace.Close()

		dc.SetFontFace(tagFace)
		tagY := nameY + float64(height)/5/2 + 40
		dc.DrawStringAnchored(tagline, float64(width)/2, tagY, 0.5, 0.5)
	}

	// Accent bar.
	const barHeight = 8
	dc.SetColor(r.accent.Color())
	dc.DrawRectangle(0, float64(height-barHeight), float64(width), barHeight)
	dc.Fill()

	return dc.Image(), nil
}

// blend mixes two colours linearly; factor 0 is all a, 1 is all b.
func blend(a, b colour.RGB, factor float64) color.Color {
	return color.RGBA{
		R: uint8(float64(a.R)*(1-factor) + float64(b.R)*factor),
		G: uint8(float64(a.G)*(1-factor) + float64(b.G)*factor),
		B: uint8(float64(a.B)*(1-factor) + float64(b.B)*factor),
		A: 255,
	}
}

// channelContrast reports whether two colours differ enough in average
// channel value to read as distinct.
func channelContrast(a, b colour.RGB) bool {
	avgA := (int(a.R) + int(a.G) + int(a.B)) / 3
	avgB := (int(b.R) + int(b.G) + int(b.B)) / 3
	diff := avgA - avgB
	if diff < 0 {
		diff = -diff
	}
	return diff > 80
}

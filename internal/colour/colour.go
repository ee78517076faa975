// Package colour provides colour parsing, perceptual maths and brand
// palette classification.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB space.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts an RGB value to a color.Color with full opacity.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

var hexValueRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// ParseHex parses a 3 or 6 digit hex colour string, with or without a
// leading "#". Shorthand digits are doubled ("#abc" becomes "#aabbcc").
func ParseHex(s string) (RGB, error) {
	m := hexValueRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}

	hex := strings.ToLower(m[1])
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

var rgbFuncRe = regexp.MustCompile(`rgba?\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)

// Normalize converts a CSS colour value to canonical lowercase "#rrggbb"
// form. It accepts 3/6-digit hex and rgb()/rgba() functions; anything
// else returns an empty string.
func Normalize(value string) string {
	value = strings.TrimSpace(value)

	if rgb, err := ParseHex(value); err == nil {
		return rgb.Hex()
	}

	if m := rgbFuncRe.FindStringSubmatch(value); m != nil {
		r := clampChannel(m[1])
		g := clampChannel(m[2])
		b := clampChannel(m[3])
		return RGB{R: r, G: g, B: b}.Hex()
	}

	return ""
}

// clampChannel parses a decimal channel value and clamps it to 0-255.
func clampChannel(s string) uint8 {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// Meets WCAG AA standard for normal text at 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Distance returns the Euclidean distance between two colours in RGB space.
// The maximum possible distance (black to white) is about 441.7.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Saturation returns a simple saturation measure (max-min)/max.
// Black (max == 0) has saturation 0.
func Saturation(rgb RGB) float64 {
	maxC := math.Max(float64(rgb.R), math.Max(float64(rgb.G), float64(rgb.B)))
	minC := math.Min(float64(rgb.R), math.Min(float64(rgb.G), float64(rgb.B)))
	if maxC == 0 {
		return 0
	}
	return (maxC - minC) / maxC
}

// IsGrayscale reports whether a colour's channels are within tolerance
// of each other, i.e. the colour carries no usable hue.
func IsGrayscale(rgb RGB, tolerance float64) bool {
	maxC := math.Max(float64(rgb.R), math.Max(float64(rgb.G), float64(rgb.B)))
	minC := math.Min(float64(rgb.R), math.Min(float64(rgb.G), float64(rgb.B)))
	return maxC-minC <= tolerance
}

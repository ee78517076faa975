package render

import (
	"image/color"
	"testing"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

func testIdentity() brand.Identity {
	return brand.Identity{
		Name:       "Fair Price",
		Domain:     "fairprice.work",
		Primary:    "#1a1a2e",
		Accent:     "#e94560",
		Background: "#ffffff",
		Text:       "#000000",
		Theme:      colour.ThemeLight,
		Tagline:    "Honest prices for everyone",
	}
}

func rgbaAt(img interface {
	At(x, y int) color.Color
}, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{"minimal", StyleMinimal, false},
		{"gradient", StyleGradient, false},
		{"geometric", StyleGeometric, false},
		{"cubist", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogoSizes(t *testing.T) {
	r := New(testIdentity())

	for _, style := range []Style{StyleMinimal, StyleGradient, StyleGeometric} {
		t.Run(string(style), func(t *testing.T) {
			img, err := r.Logo(128, style)
			if err != nil {
				t.Fatalf("Logo() error = %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != 128 || bounds.Dy() != 128 {
				t.Errorf("logo bounds = %v, want 128x128", bounds)
			}
		})
	}
}

func TestMinimalLogoBackground(t *testing.T) {
	r := New(testIdentity())
	img, err := r.Logo(256, StyleMinimal)
	if err != nil {
		t.Fatalf("Logo() error = %v", err)
	}

	// Corners are outside the padded rounded rectangle.
	if c := rgbaAt(img, 0, 0); c.A != 0 {
		t.Errorf("corner not transparent: %+v", c)
	}

	// Inside the rectangle, above the initials, the primary colour shows.
	c := rgbaAt(img, 128, 35)
	if c.R != 0x1a || c.G != 0x1a || c.B != 0x2e {
		t.Errorf("fill = %+v, want primary #1a1a2e", c)
	}
}

func TestGradientLogoCorner(t *testing.T) {
	r := New(testIdentity())
	img, err := r.Logo(128, StyleGradient)
	if err != nil {
		t.Fatalf("Logo() error = %v", err)
	}

	// Top-left is pure primary (blend factor zero).
	c := rgbaAt(img, 0, 0)
	if c.R != 0x1a || c.G != 0x1a || c.B != 0x2e {
		t.Errorf("top-left = %+v, want primary #1a1a2e", c)
	}
}

func TestGeometricLogoCoverage(t *testing.T) {
	r := New(testIdentity())
	img, err := r.Logo(128, StyleGeometric)
	if err != nil {
		t.Fatalf("Logo() error = %v", err)
	}

	if c := rgbaAt(img, 64, 64); c.A == 0 {
		t.Error("center pixel transparent, expected circle coverage")
	}
	if c := rgbaAt(img, 0, 127); c.A != 0 {
		t.Errorf("bottom-left corner not transparent: %+v", c)
	}
}

func TestOGImageAccentBar(t *testing.T) {
	r := New(testIdentity())
	img, err := r.OGImage(1200, 630)
	if err != nil {
		t.Fatalf("OGImage() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 1200 || bounds.Dy() != 630 {
		t.Fatalf("bounds = %v, want 1200x630", bounds)
	}

	// Bottom rows carry the accent bar.
	c := rgbaAt(img, 600, 627)
	if c.R != 0xe9 || c.G != 0x45 || c.B != 0x60 {
		t.Errorf("accent bar pixel = %+v, want #e94560", c)
	}

	// The top-left corner is (nearly) the unblended background.
	top := rgbaAt(img, 0, 0)
	if top.R != 0xff || top.G != 0xff || top.B != 0xff {
		t.Errorf("top row = %+v, want background #ffffff", top)
	}
}

func TestNewFallsBackOnBadColours(t *testing.T) {
	id := testIdentity()
	id.Primary = "not-a-colour"
	r := New(id)

	want, _ := colour.ParseHex("#333333")
	if r.primary != want {
		t.Errorf("primary = %+v, want default %+v", r.primary, want)
	}
}

package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

func previewIdentity() brand.Identity {
	return brand.Identity{
		Name:       "Acme",
		Domain:     "acme.example",
		Colours:    []string{"#1a1a2e", "#e94560", "#ffffff"},
		Primary:    "#1a1a2e",
		Accent:     "#e94560",
		Background: "#ffffff",
		Text:       "#000000",
		Theme:      colour.ThemeLight,
		Font:       "Inter",
		Tagline:    "Widgets for everyone",
	}
}

func TestPreviewHTML(t *testing.T) {
	data, err := PreviewHTML(previewIdentity(), "https://acme.example")
	if err != nil {
		t.Fatalf("PreviewHTML() error = %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"<title>Brand Kit Preview - Acme</title>",
		"https://acme.example",
		"Widgets for everyone",
		"#1a1a2e",
		"#e94560",
		"og-image.png",
		"android-chrome-512x512.png",
		"favicon-16x16.png",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestPreviewHTMLEscapesName(t *testing.T) {
	id := previewIdentity()
	id.Name = `<script>alert(1)</script>`

	data, err := PreviewHTML(id, "https://acme.example")
	if err != nil {
		t.Fatalf("PreviewHTML() error = %v", err)
	}
	if strings.Contains(string(data), "<script>alert(1)</script>") {
		t.Error("brand name was not HTML-escaped")
	}
}

func TestWritePreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.html")

	if err := WritePreview(path, previewIdentity(), "https://acme.example"); err != nil {
		t.Fatalf("WritePreview() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read preview: %v", err)
	}
	if !strings.Contains(string(data), "<title>Brand Kit Preview - Acme</title>") {
		t.Error("written preview missing title")
	}
}

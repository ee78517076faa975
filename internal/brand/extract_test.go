package brand

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmylchreest/brandkit/internal/colour"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare domain gets https", "example.com", "https://example.com"},
		{"https kept", "https://example.com", "https://example.com"},
		{"http kept", "http://example.com/page", "http://example.com/page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain host", "https://example.com/about", "example.com"},
		{"www stripped", "https://www.example.com", "example.com"},
		{"port stripped", "http://example.com:8080/x", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Domain(tt.in); got != tt.want {
				t.Errorf("Domain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
<title>Acme | Widgets for professionals</title>
<meta property="og:site_name" content="Acme">
<meta property="og:description" content="Widgets for professionals">
<style>
body { background: #ffffff; color: #1a1a2e; font-family: "Inter", sans-serif; }
a { color: #1a1a2e; }
.hero { background: #1a1a2e; color: #ffffff; }
.cta { color: #e94560; border-color: #e94560; }
.card { background: #ffffff; border-color: #ffffff; }
h1 { color: #1a1a2e; }
p { background: #ffffff; color: #ffffff; }
</style>
</head>
<body><h1>Acme</h1></body>
</html>`))
	}))
	defer server.Close()

	id, err := Extract(context.Background(), server.URL, ExtractOptions{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if id.Name != "Acme" {
		t.Errorf("Name = %q, want Acme", id.Name)
	}
	if id.Tagline != "Widgets for professionals" {
		t.Errorf("Tagline = %q, want %q", id.Tagline, "Widgets for professionals")
	}
	if id.Font != "Inter" {
		t.Errorf("Font = %q, want Inter", id.Font)
	}
	if id.Theme != colour.ThemeLight {
		t.Errorf("Theme = %q, want light", id.Theme)
	}
	if id.Primary != "#1a1a2e" {
		t.Errorf("Primary = %q, want #1a1a2e", id.Primary)
	}
	if id.Accent != "#e94560" {
		t.Errorf("Accent = %q, want #e94560", id.Accent)
	}
	if id.Background != "#ffffff" {
		t.Errorf("Background = %q, want #ffffff", id.Background)
	}
}

func TestExtractInvalidURL(t *testing.T) {
	_, err := Extract(context.Background(), "://bad", ExtractOptions{Timeout: time.Second})
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("Extract() error = %v, want ErrInvalidURL", err)
	}
}

func TestExtractFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := Extract(context.Background(), server.URL, ExtractOptions{Timeout: 5 * time.Second})
	if err == nil {
		t.Fatal("expected error for failing fetch, got nil")
	}
	if errors.Is(err, ErrInvalidURL) {
		t.Error("fetch failure should not be ErrInvalidURL")
	}
}

func TestFallback(t *testing.T) {
	id := Fallback("https://www.acme-widgets.example/path")

	if id.Domain != "acme-widgets.example" {
		t.Errorf("Domain = %q, want acme-widgets.example", id.Domain)
	}
	if id.Name == "" {
		t.Error("expected a domain-derived name, got empty string")
	}

	def := colour.DefaultPalette()
	if id.Primary != def.Primary || id.Background != def.Background {
		t.Errorf("palette = %s/%s, want default %s/%s",
			id.Primary, id.Background, def.Primary, def.Background)
	}
}

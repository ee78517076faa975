package aigen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 150, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestPollinationsGenerate(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes(t, 64, 64))
	}))
	defer server.Close()

	p := NewPollinations()
	p.baseURL = server.URL

	img, err := p.Generate(context.Background(), "a blue circle", 512, 512)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("decoded width = %d, want 64", img.Bounds().Dx())
	}

	if !strings.Contains(gotPath, "a%20blue%20circle") {
		t.Errorf("prompt not path-escaped: %q", gotPath)
	}
	for _, param := range []string{"width=512", "height=512", "model=flux", "nologo=true"} {
		if !strings.Contains(gotQuery, param) {
			t.Errorf("query missing %s: %q", param, gotQuery)
		}
	}
}

func TestPollinationsAlwaysAvailable(t *testing.T) {
	if !NewPollinations().Available() {
		t.Error("pollinations should always be available")
	}
}

func TestPollinationsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p := NewPollinations()
	p.baseURL = server.URL

	if _, err := p.Generate(context.Background(), "x", 64, 64); err == nil {
		t.Error("expected error for HTTP 503")
	}
}

func TestOpenAIGenerate(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngBytes(t, 1024, 1024))

	var gotAuth string
	var gotReq openaiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		fmt.Fprintf(w, `{"data":[{"b64_json":%q}]}`, encoded)
	}))
	defer server.Close()

	p := &OpenAI{baseURL: server.URL, apiKey: "test-key", client: server.Client()}

	img, err := p.Generate(context.Background(), "a logo", 512, 512)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Square request maps to 1024x1024 and is scaled back down.
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Errorf("bounds = %v, want 512x512", img.Bounds())
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-image-1" || gotReq.N != 1 {
		t.Errorf("request = %+v", gotReq)
	}
	if gotReq.Size != "1024x1024" {
		t.Errorf("size = %q, want 1024x1024", gotReq.Size)
	}
}

func TestOpenAIUnavailableWithoutKey(t *testing.T) {
	p := &OpenAI{}
	if p.Available() {
		t.Error("provider available without API key")
	}
	if _, err := p.Generate(context.Background(), "x", 64, 64); err == nil {
		t.Error("expected error without API key")
	}
}

func TestSupportedSize(t *testing.T) {
	tests := []struct {
		width, height int
		want          string
	}{
		{1200, 630, "1536x1024"},
		{630, 1200, "1024x1536"},
		{512, 512, "1024x1024"},
	}
	for _, tt := range tests {
		if got := supportedSize(tt.width, tt.height); got != tt.want {
			t.Errorf("supportedSize(%d, %d) = %q, want %q", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestGoogleGenAIAvailability(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	if NewGoogleGenAI().Available() {
		t.Error("provider available without API key")
	}

	t.Setenv("GEMINI_API_KEY", "some-key")
	if !NewGoogleGenAI().Available() {
		t.Error("provider unavailable with GEMINI_API_KEY set")
	}
}

func TestSelectNamedProvider(t *testing.T) {
	p, err := Select("pollinations")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if p.Name() != "pollinations" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestSelectUnknownProvider(t *testing.T) {
	if _, err := Select("midjourney"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestSelectUnavailableProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := Select("openai"); err == nil {
		t.Error("expected error for provider without API key")
	}
}

func TestSelectAutoDetect(t *testing.T) {
	// Without an OpenAI key the chain lands on pollinations.
	t.Setenv("OPENAI_API_KEY", "")
	p, err := Select("")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if p.Name() != "pollinations" {
		t.Errorf("auto-detected %q, want pollinations", p.Name())
	}

	t.Setenv("OPENAI_API_KEY", "key")
	p, err = Select("")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("auto-detected %q, want openai", p.Name())
	}
}

func TestPrompts(t *testing.T) {
	id := brand.Identity{
		Name:       "Acme",
		Primary:    "#1a1a2e",
		Accent:     "#e94560",
		Background: "#ffffff",
		Theme:      colour.ThemeLight,
	}

	logo := LogoPrompt(id)
	for _, want := range []string{"NO TEXT", "#1a1a2e", "#e94560", "light background (#ffffff)"} {
		if !strings.Contains(logo, want) {
			t.Errorf("logo prompt missing %q:\n%s", want, logo)
		}
	}

	og := OGPrompt(id)
	for _, want := range []string{"'Acme'", "#1a1a2e", "light theme", "no text"} {
		if !strings.Contains(og, want) {
			t.Errorf("og prompt missing %q:\n%s", want, og)
		}
	}
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/htmlrender"
	"github.com/jmylchreest/brandkit/internal/render"
)

const (
	logoSize = 512
	ogWidth  = 1200
	ogHeight = 630
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Brandkit</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 720px; margin: 0 auto; padding: 2rem; }
        input[type=url] { width: 60%; padding: 0.4rem; }
        code { background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
        li { margin: 0.4rem 0; }
    </style>
</head>
<body>
    <h1>Brandkit</h1>
    <p>Extract a website's brand identity and generate a complete asset kit.</p>
    <form action="/download" method="get">
        <input type="url" name="url" placeholder="https://example.com" required>
        <button type="submit">Download kit</button>
    </form>
    <h2>API</h2>
    <ul>
        <li><code>GET /api/extract?url=...</code> - identity as JSON</li>
        <li><code>GET /api/effects</code> - available background effects</li>
        <li><code>GET /preview/logo?url=...&amp;style=minimal</code> - rendered logo PNG</li>
        <li><code>GET /preview/og?url=...&amp;style=minimal</code> - rendered OG image PNG</li>
        <li><code>GET /preview/logo.html?url=...&amp;mood=bold</code> - live logo HTML</li>
        <li><code>GET /preview/og.html?url=...&amp;bg-effect=mesh</code> - live OG HTML</li>
        <li><code>GET /download?url=...</code> - complete kit as a zip</li>
    </ul>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, nil)
}

// identityFrom resolves the request's brand identity. When the query
// carries a name plus a primary colour, the identity is rebuilt from
// the parameters without refetching the site - preview endpoints pass
// extracted values back this way. Otherwise the URL is extracted live,
// degrading to the domain-derived fallback when the fetch fails.
func (s *Server) identityFrom(r *http.Request) (brand.Identity, int, error) {
	q := r.URL.Query()
	pageURL := q.Get("url")
	if pageURL == "" {
		return brand.Identity{}, http.StatusBadRequest, errors.New("missing url parameter")
	}

	if q.Get("name") != "" && q.Get("primary") != "" {
		return identityFromParams(pageURL, q), 0, nil
	}

	id, err := brand.Extract(r.Context(), pageURL, brand.ExtractOptions{Timeout: s.timeout})
	if err != nil {
		if errors.Is(err, brand.ErrInvalidURL) {
			return brand.Identity{}, http.StatusBadRequest, err
		}
		id = brand.Fallback(pageURL)
	}

	applyParamOverrides(&id, q)
	return id, 0, nil
}

// identityFromParams rebuilds an identity purely from query parameters.
func identityFromParams(pageURL string, q url.Values) brand.Identity {
	id := brand.Fallback(pageURL)
	applyParamOverrides(&id, q)

	if tagline := q.Get("tagline"); tagline != "" {
		id.Tagline = tagline
	}
	if font := q.Get("font"); font != "" {
		id.Font = font
	}
	return id
}

// applyParamOverrides replaces identity fields with query parameters,
// recomputing theme and text when the background changes.
func applyParamOverrides(id *brand.Identity, q url.Values) {
	if name := q.Get("name"); name != "" {
		id.Name = name
	}
	if hex := colour.Normalize(q.Get("primary")); hex != "" {
		id.Primary = hex
	}
	if hex := colour.Normalize(q.Get("accent")); hex != "" {
		id.Accent = hex
	}
	if hex := colour.Normalize(q.Get("background")); hex != "" {
		id.Background = hex
		if rgb, err := colour.ParseHex(hex); err == nil {
			if colour.Luminance(rgb) < 0.5 {
				id.Theme = colour.ThemeDark
				id.Text = "#ffffff"
			} else {
				id.Theme = colour.ThemeLight
				id.Text = "#000000"
			}
		}
	}
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	id, status, err := s.identityFrom(r)
	if err != nil {
		httpError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(id)
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(htmlrender.Effects)
}

func (s *Server) handlePreviewLogoHTML(w http.ResponseWriter, r *http.Request) {
	id, status, err := s.identityFrom(r)
	if err != nil {
		httpError(w, status, err)
		return
	}
	style, err := styleFromQuery(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	size := logoSize
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, htmlrender.LogoHTML(id, style, size))
}

func (s *Server) handlePreviewOGHTML(w http.ResponseWriter, r *http.Request) {
	id, status, err := s.identityFrom(r)
	if err != nil {
		httpError(w, status, err)
		return
	}
	style, err := styleFromQuery(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, htmlrender.OGHTML(id, style, ogWidth, ogHeight))
}

func (s *Server) handlePreviewLogo(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, func(renderer *render.Renderer, style render.Style) ([]byte, error) {
		logo, err := renderer.Logo(logoSize, style)
		if err != nil {
			return nil, err
		}
		return render.EncodePNG(logo)
	})
}

func (s *Server) handlePreviewOG(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, func(renderer *render.Renderer, style render.Style) ([]byte, error) {
		og, err := renderer.OGImage(ogWidth, ogHeight)
		if err != nil {
			return nil, err
		}
		return render.EncodePNG(og)
	})
}

// servePNG renders (or serves a cached copy of) a palette-drawn asset.
func (s *Server) servePNG(w http.ResponseWriter, r *http.Request, draw func(*render.Renderer, render.Style) ([]byte, error)) {
	key := r.URL.Path + "?" + r.URL.RawQuery
	if data, ok := s.cache.get(key); ok {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
		return
	}

	id, status, err := s.identityFrom(r)
	if err != nil {
		httpError(w, status, err)
		return
	}
	style, err := drawStyleFromQuery(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)
		return
	}

	data, err := draw(render.New(id), style)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	s.cache.set(key, data)

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Path + "?" + r.URL.RawQuery

	data, ok := s.cache.get(key)
	var name string
	if !ok {
		id, status, err := s.identityFrom(r)
		if err != nil {
			httpError(w, status, err)
			return
		}
		style, err := drawStyleFromQuery(r)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)
			return
		}

		data, err = kitZip(id, style, r.URL.Query().Get("url"))
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		s.cache.set(key, data)
		name = id.Name
	} else {
		name = r.URL.Query().Get("name")
	}

	filename := safeName(name) + "-brand-kit.zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

// styleFromQuery resolves the html renderer style from mood/bg-effect
// parameters.
func styleFromQuery(r *http.Request) (htmlrender.StyleConfig, error) {
	q := r.URL.Query()
	return htmlrender.StyleFor(q.Get("mood"), q.Get("bg-effect"))
}

// drawStyleFromQuery resolves the raster logo style, defaulting to
// minimal.
func drawStyleFromQuery(r *http.Request) (render.Style, error) {
	name := r.URL.Query().Get("style")
	if name == "" {
		name = string(render.StyleMinimal)
	}
	return render.ParseStyle(name)
}

var unsafeNameRe = regexp.MustCompile(`[^a-z0-9]+`)

// safeName turns a brand name into a filename fragment.
func safeName(name string) string {
	s := unsafeNameRe.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "brandkit"
	}
	return s
}

func httpError(w http.ResponseWriter, status int, err error) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

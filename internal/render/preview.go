package render

import (
	"bytes"
	"html/template"
	"os"

	"github.com/jmylchreest/brandkit/internal/brand"
)

// previewTemplate renders the static asset preview page written next to
// the generated files.
var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Brand Kit Preview - {{.Identity.Name}}</title>
    <style>
        :root { --primary: {{.Identity.Primary}}; --accent: {{.Identity.Accent}}; }
        body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 960px; margin: 0 auto; padding: 2rem; color: #222; }
        h1 { color: var(--primary); }
        h2 { border-bottom: 2px solid var(--accent); padding-bottom: 0.25rem; }
        section { margin: 2rem 0; }
        .color-swatch { display: inline-flex; flex-direction: column; align-items: center; margin: 0.5rem; }
        .color-box { width: 80px; height: 80px; border-radius: 8px; border: 2px solid #ccc; margin-bottom: 0.5rem; }
        .favicon-grid { display: flex; flex-wrap: wrap; gap: 1.5rem; align-items: end; }
        .favicon-item { text-align: center; }
        .favicon-item img { border: 1px solid #ddd; border-radius: 4px; background: repeating-conic-gradient(#eee 0% 25%, #fff 0% 50%) 50% / 10px 10px; }
        .og-preview { max-width: 100%; border-radius: 8px; box-shadow: 0 4px 12px rgba(0,0,0,0.15); }
        code { font-size: 0.85em; background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
    </style>
</head>
<body>
    <header>
        <h1>{{.Identity.Name}}</h1>
        <p>Brand kit generated from <a href="{{.SourceURL}}">{{.SourceURL}}</a></p>
        {{if .Identity.Tagline}}<p><em>{{.Identity.Tagline}}</em></p>{{end}}
    </header>

    <section>
        <h2>Colors</h2>
        <div>
            <div class="color-swatch"><div class="color-box" style="background: {{.Identity.Primary}};"></div><small>Primary</small><code>{{.Identity.Primary}}</code></div>
            <div class="color-swatch"><div class="color-box" style="background: {{.Identity.Accent}};"></div><small>Accent</small><code>{{.Identity.Accent}}</code></div>
            <div class="color-swatch"><div class="color-box" style="background: {{.Identity.Background}};"></div><small>Background</small><code>{{.Identity.Background}}</code></div>
            <div class="color-swatch"><div class="color-box" style="background: {{.Identity.Text}};"></div><small>Text</small><code>{{.Identity.Text}}</code></div>
        </div>
        <p><small>Theme: <strong>{{.Identity.Theme}}</strong></small></p>
    </section>

    <section>
        <h2>Logo</h2>
        <p><small>512x512 source image</small></p>
        <img src="android-chrome-512x512.png" width="256" height="256" alt="Logo" style="border-radius: 20%; background: repeating-conic-gradient(#eee 0% 25%, #fff 0% 50%) 50% / 10px 10px;">
    </section>

    <section>
        <h2>Favicons</h2>
        <div class="favicon-grid">
            <div class="favicon-item"><img src="favicon-16x16.png" width="16" height="16" alt="16x16"><br><small>16x16</small></div>
            <div class="favicon-item"><img src="favicon-32x32.png" width="32" height="32" alt="32x32"><br><small>32x32</small></div>
            <div class="favicon-item"><img src="apple-touch-icon.png" width="60" height="60" alt="180x180"><br><small>Apple Touch 180x180</small></div>
            <div class="favicon-item"><img src="android-chrome-192x192.png" width="96" height="96" alt="192x192"><br><small>Android 192x192</small></div>
            <div class="favicon-item"><img src="android-chrome-512x512.png" width="128" height="128" alt="512x512"><br><small>Android HD 512x512</small></div>
        </div>
    </section>

    <section>
        <h2>Open Graph Image</h2>
        <p><small>1200x630 - for social media previews</small></p>
        <img src="og-image.png" alt="OG Image" class="og-preview">
    </section>
</body>
</html>
`))

// previewData feeds the preview template.
type previewData struct {
	Identity  brand.Identity
	SourceURL string
}

// PreviewHTML renders the preview page for a generated kit.
func PreviewHTML(id brand.Identity, sourceURL string) ([]byte, error) {
	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, previewData{Identity: id, SourceURL: sourceURL}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePreview writes preview.html next to the generated assets.
func WritePreview(path string, id brand.Identity, sourceURL string) error {
	data, err := PreviewHTML(id, sourceURL)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

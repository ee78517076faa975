package server

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/render"
)

// kitZip renders the complete brand kit in memory and packs it into a
// zip archive: the favicon set, the OG image and the preview page.
func kitZip(id brand.Identity, style render.Style, sourceURL string) ([]byte, error) {
	renderer := render.New(id)

	logo, err := renderer.Logo(logoSize, style)
	if err != nil {
		return nil, fmt.Errorf("logo render failed: %w", err)
	}
	og, err := renderer.OGImage(ogWidth, ogHeight)
	if err != nil {
		return nil, fmt.Errorf("og image render failed: %w", err)
	}

	files, err := render.NewFaviconBuilder(logo, id.Name, id.Primary).Files()
	if err != nil {
		return nil, err
	}

	ogData, err := render.EncodePNG(og)
	if err != nil {
		return nil, fmt.Errorf("failed to encode og-image.png: %w", err)
	}
	files = append(files, render.File{Name: "og-image.png", Data: ogData})

	preview, err := render.PreviewHTML(id, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build preview.html: %w", err)
	}
	files = append(files, render.File{Name: "preview.html", Data: preview})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// FaviconFile names a PNG in the favicon set and its square size.
type FaviconFile struct {
	Name string
	Size int
}

// FaviconSizes is the standard favicon set, in generation order.
var FaviconSizes = []FaviconFile{
	{"favicon-16x16.png", 16},
	{"favicon-32x32.png", 32},
	{"apple-touch-icon.png", 180},
	{"android-chrome-192x192.png", 192},
	{"android-chrome-512x512.png", 512},
}

// icoSizes are the resolutions bundled into favicon.ico.
var icoSizes = []int{16, 32, 48}

// FaviconBuilder writes a complete favicon set from one source image.
// The source should be 512x512 for best quality; every output is scaled
// from it.
type FaviconBuilder struct {
	source     image.Image
	name       string
	themeColor string
}

// NewFaviconBuilder prepares a builder. The name and theme colour feed
// the web manifest.
func NewFaviconBuilder(source image.Image, name, themeColor string) *FaviconBuilder {
	return &FaviconBuilder{
		source:     source,
		name:       name,
		themeColor: themeColor,
	}
}

// File is a generated asset held in memory, for callers that stream or
// archive the kit instead of writing it to disk.
type File struct {
	Name string
	Data []byte
}

// Files renders the full favicon set in memory: the PNG sizes,
// favicon.ico and site.webmanifest, in generation order.
func (b *FaviconBuilder) Files() ([]File, error) {
	files := make([]File, 0, len(FaviconSizes)+2)

	for _, f := range FaviconSizes {
		data, err := EncodePNG(Scale(b.source, f.Size, f.Size))
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", f.Name, err)
		}
		files = append(files, File{Name: f.Name, Data: data})
	}

	ico, err := b.icoBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode favicon.ico: %w", err)
	}
	files = append(files, File{Name: "favicon.ico", Data: ico})

	manifest, err := b.manifestBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode site.webmanifest: %w", err)
	}
	files = append(files, File{Name: "site.webmanifest", Data: manifest})

	return files, nil
}

// Build writes the PNG set, favicon.ico and site.webmanifest into
// outputDir, creating it if needed. Returns the written file names in
// order.
func (b *FaviconBuilder) Build(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := b.Files()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(outputDir, f.Name), f.Data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
		written = append(written, f.Name)
	}
	return written, nil
}

// Scale resamples an image to the target size with Catmull-Rom
// interpolation.
func Scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG encodes an image and writes it to path.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (b *FaviconBuilder) icoBytes() ([]byte, error) {
	images := make([]image.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		images = append(images, Scale(b.source, size, size))
	}

	var buf bytes.Buffer
	if err := encodeICO(&buf, images); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// webManifest is the site.webmanifest document.
type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []manifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func (b *FaviconBuilder) manifestBytes() ([]byte, error) {
	manifest := webManifest{
		Name:      b.name,
		ShortName: b.name,
		Icons: []manifestIcon{
			{Src: "/android-chrome-192x192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/android-chrome-512x512.png", Sizes: "512x512", Type: "image/png"},
		},
		ThemeColor:      b.themeColor,
		BackgroundColor: b.themeColor,
		Display:         "standalone",
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

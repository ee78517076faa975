package htmlrender

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/jmylchreest/brandkit/internal/brand"
)

const (
	// probeTimeout bounds the browser availability check.
	probeTimeout = 15 * time.Second

	// renderTimeout bounds a single screenshot, including the Google
	// Fonts fetch.
	renderTimeout = 30 * time.Second

	// settleDelay gives web fonts time to load before the screenshot.
	settleDelay = 500 * time.Millisecond
)

// Renderer screenshots the HTML documents with headless Chrome.
type Renderer struct {
	identity brand.Identity
	style    StyleConfig
}

// New builds an HTML renderer for one identity.
func New(id brand.Identity, style StyleConfig) *Renderer {
	return &Renderer{identity: id, style: style}
}

// Available reports whether a headless Chrome can be launched. Callers
// use this to fall back to the raster renderer.
func Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions()...)
	defer cancelAlloc()
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	return chromedp.Run(taskCtx, chromedp.Navigate("about:blank")) == nil
}

// Logo renders the logo document and returns the screenshot, with a
// transparent background outside the tile.
func (r *Renderer) Logo(ctx context.Context, size int) (image.Image, error) {
	html := LogoHTML(r.identity, r.style, size)
	return screenshot(ctx, html, size, size, true)
}

// OGImage renders the Open Graph banner document.
func (r *Renderer) OGImage(ctx context.Context, width, height int) (image.Image, error) {
	html := OGHTML(r.identity, r.style, width, height)
	return screenshot(ctx, html, width, height, false)
}

func allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
	)
}

// screenshot renders an HTML document at the given viewport size and
// decodes the PNG capture.
func screenshot(ctx context.Context, html string, width, height int, transparent bool) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions()...)
	defer cancelAlloc()
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
	}
	if transparent {
		tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 0, G: 0, B: 0, A: 0}).
				Do(ctx)
		}))
	}

	var buf []byte
	tasks = append(tasks,
		chromedp.Navigate(dataURL),
		chromedp.Sleep(settleDelay),
		chromedp.CaptureScreenshot(&buf),
	)

	if err := chromedp.Run(taskCtx, tasks...); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	return img, nil
}

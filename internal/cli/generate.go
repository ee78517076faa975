package cli

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/aigen"
	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/config"
	"github.com/jmylchreest/brandkit/internal/htmlrender"
	"github.com/jmylchreest/brandkit/internal/render"
)

// Open Graph images are fixed at the size social cards expect.
const (
	ogWidth  = 1200
	ogHeight = 630

	logoSize = 512
)

var (
	// Generate command flags
	generateOutput    string
	generateMethod    string
	generateStyle     string
	generateProvider  string
	generateMood      string
	generateBGEffect  string
	generateTimeout   time.Duration
	generateNoPreview bool

	// Manual identity overrides
	generateName       string
	generatePrimary    string
	generateAccent     string
	generateBackground string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate a complete brand asset kit from a website",
	Long: `Generate a complete brand kit: favicon set (PNG + multi-size ICO),
Open Graph image, web manifest and an HTML preview page.

The logo is drawn from the extracted palette by default. With
--method html the assets are rendered as HTML/CSS and screenshotted
with headless Chrome (richest output; falls back to draw when no
browser is installed). With --method ai the logo and OG image come
from an AI image provider instead (openai, pollinations or
googlegenai; auto-detected when --provider is not set).

Defaults for method, style and provider can also come from
~/.config/brandkit/config.yaml or BRANDKIT_* environment variables.

Examples:
  # Generate a kit into ./brand-kit
  brandkit generate https://example.com

  # Browser-rendered assets with a mood preset
  brandkit generate --method html --mood bold https://example.com

  # Gradient-style logo into a specific directory
  brandkit generate --style gradient --output ./static https://example.com

  # AI-generated artwork (free provider, no API key)
  brandkit generate --method ai --provider pollinations https://example.com

  # Manual colour overrides
  brandkit generate --primary '#1a1a2e' --accent '#e94560' https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory (default: ./brand-kit)")
	generateCmd.Flags().StringVarP(&generateMethod, "method", "m", "", "generation method (draw, html, ai)")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "", "logo style for draw method (minimal, gradient, geometric)")
	generateCmd.Flags().StringVarP(&generateProvider, "provider", "p", "", "AI provider (openai, pollinations, googlegenai; auto-detect when empty)")
	generateCmd.Flags().StringVar(&generateMood, "mood", "", "style preset for html method (default, minimal, bold, elegant, neon)")
	generateCmd.Flags().StringVar(&generateBGEffect, "bg-effect", "", "background effect for html method (aurora, mesh, spotlight, ...)")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 10*time.Second, "HTTP timeout for page and stylesheet fetches")
	generateCmd.Flags().BoolVar(&generateNoPreview, "no-preview", false, "skip writing preview.html")

	generateCmd.Flags().StringVar(&generateName, "name", "", "override brand name")
	generateCmd.Flags().StringVar(&generatePrimary, "primary", "", "override primary colour (hex)")
	generateCmd.Flags().StringVar(&generateAccent, "accent", "", "override accent colour (hex)")
	generateCmd.Flags().StringVar(&generateBackground, "background", "", "override background colour (hex)")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags win; unset flags take config defaults.
	method := generateMethod
	if method == "" {
		method = cfg.Method
	}
	styleName := generateStyle
	if styleName == "" {
		styleName = cfg.Style
	}
	provider := generateProvider
	if provider == "" {
		provider = cfg.Provider
	}
	outputDir := generateOutput
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	timeout := generateTimeout
	if !cmd.Flags().Changed("timeout") && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	if method != "draw" && method != "html" && method != "ai" {
		return fmt.Errorf("unknown method %q (valid: draw, html, ai)", method)
	}
	style, err := render.ParseStyle(styleName)
	if err != nil {
		return err
	}
	htmlStyle, err := htmlrender.StyleFor(generateMood, generateBGEffect)
	if err != nil {
		return err
	}

	// The html method needs a Chrome install; degrade to drawing when
	// none is found rather than failing the run.
	if method == "html" && !htmlrender.Available(cmd.Context()) {
		if !isQuiet(cmd) {
			fmt.Fprintln(os.Stderr, "Warning: no headless browser available, falling back to draw")
		}
		method = "draw"
	}

	id, err := extractIdentity(cmd.Context(), cmd, args[0], timeout, overrides{
		name:       generateName,
		primary:    generatePrimary,
		accent:     generateAccent,
		background: generateBackground,
	})
	if err != nil {
		return err
	}

	var logo, ogImage image.Image
	switch method {
	case "ai":
		logo, ogImage, err = generateWithAI(cmd, id, provider)
	case "html":
		logo, ogImage, err = generateWithHTML(cmd, id, htmlStyle)
	default:
		logo, ogImage, err = generateWithRenderer(cmd, id, style)
	}
	if err != nil {
		return err
	}

	verbosef(cmd, "Building favicon set in %s...\n", outputDir)

	builder := render.NewFaviconBuilder(logo, id.Name, id.Primary)
	written, err := builder.Build(outputDir)
	if err != nil {
		return err
	}
	for _, name := range written {
		verbosef(cmd, "  Created %s\n", name)
	}

	ogPath := filepath.Join(outputDir, "og-image.png")
	if err := render.WritePNG(ogPath, ogImage); err != nil {
		return fmt.Errorf("failed to write og-image.png: %w", err)
	}
	written = append(written, "og-image.png")
	verbosef(cmd, "  Created og-image.png (%dx%d)\n", ogWidth, ogHeight)

	if !generateNoPreview {
		if err := render.WritePreview(filepath.Join(outputDir, "preview.html"), id, args[0]); err != nil {
			return fmt.Errorf("failed to write preview.html: %w", err)
		}
		written = append(written, "preview.html")
		verbosef(cmd, "  Created preview.html\n")
	}

	if !isQuiet(cmd) {
		absDir, _ := filepath.Abs(outputDir)
		fmt.Printf("Brand kit generated: %s (%d files)\n", absDir, len(written))
		fmt.Printf("  Primary:    %s\n", id.Primary)
		fmt.Printf("  Accent:     %s\n", id.Accent)
		fmt.Printf("  Background: %s\n", id.Background)
		if !generateNoPreview {
			fmt.Printf("  Preview:    file://%s\n", filepath.Join(absDir, "preview.html"))
		}
	}
	return nil
}

// generateWithRenderer draws the logo and OG image from the palette.
func generateWithRenderer(cmd *cobra.Command, id brand.Identity, style render.Style) (image.Image, image.Image, error) {
	verbosef(cmd, "Drawing %s logo...\n", style)

	r := render.New(id)
	logo, err := r.Logo(logoSize, style)
	if err != nil {
		return nil, nil, err
	}
	ogImage, err := r.OGImage(ogWidth, ogHeight)
	if err != nil {
		return nil, nil, err
	}
	return logo, ogImage, nil
}

// generateWithHTML renders the logo and OG image as HTML/CSS in a
// headless browser.
func generateWithHTML(cmd *cobra.Command, id brand.Identity, style htmlrender.StyleConfig) (image.Image, image.Image, error) {
	verbosef(cmd, "Rendering HTML assets (%s effect)...\n", style.Effect)

	r := htmlrender.New(id, style)
	ctx := cmd.Context()

	logo, err := r.Logo(ctx, logoSize)
	if err != nil {
		return nil, nil, fmt.Errorf("logo render failed: %w", err)
	}
	ogImage, err := r.OGImage(ctx, ogWidth, ogHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("og image render failed: %w", err)
	}
	return logo, ogImage, nil
}

// generateWithAI produces the logo and OG image through an AI provider.
func generateWithAI(cmd *cobra.Command, id brand.Identity, providerName string) (image.Image, image.Image, error) {
	provider, err := aigen.Select(providerName)
	if err != nil {
		return nil, nil, err
	}

	verbosef(cmd, "Using AI provider: %s\n", provider.Name())

	ctx := cmd.Context()
	logo, err := provider.Generate(ctx, aigen.LogoPrompt(id), logoSize, logoSize)
	if err != nil {
		return nil, nil, fmt.Errorf("logo generation failed: %w", err)
	}
	ogImage, err := provider.Generate(ctx, aigen.OGPrompt(id), ogWidth, ogHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("og image generation failed: %w", err)
	}
	return logo, ogImage, nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

var (
	// Extract command flags
	extractFormat      string
	extractOutput      string
	extractTimeout     time.Duration
	extractShowPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract brand identity from a website",
	Long: `Extract a website's brand identity: its classified colour palette,
name, tagline and font.

Colours are collected from inline styles, style blocks and up to three
linked stylesheets, then classified into primary, accent, background
and text roles. Semantic CSS variables (--color-primary, --accent,
--background) override the statistical classification when present.

Examples:
  # Extract and print the palette
  brandkit extract https://example.com

  # Machine-readable output
  brandkit extract --format json https://example.com

  # Palette with terminal colour swatches
  brandkit extract --preview https://example.com

  # Save to a file
  brandkit extract --output identity.json --format json https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 10*time.Second, "HTTP timeout for page and stylesheet fetches")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal (auto-enabled on a TTY)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	id, err := extractIdentity(cmd.Context(), cmd, args[0], extractTimeout, overrides{})
	if err != nil {
		return err
	}

	// Swatches default on when writing hex output to a terminal.
	showPreview := extractShowPreview
	if !cmd.Flags().Changed("preview") && extractOutput == "" {
		showPreview = extractFormat == "hex" && term.IsTerminal(int(os.Stdout.Fd()))
	}

	output, err := formatIdentity(id, extractFormat, showPreview)
	if err != nil {
		return err
	}

	if extractOutput != "" {
		verbosef(cmd, "Writing output to: %s\n", extractOutput)
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}

// formatIdentity renders an identity in the requested format.
func formatIdentity(id brand.Identity, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatIdentityText(id, showPreview), nil
	case "json":
		data, err := json.MarshalIndent(id, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
	}
}

// formatIdentityText renders the human-readable palette listing.
func formatIdentityText(id brand.Identity, showPreview bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name:    %s\n", id.Name)
	fmt.Fprintf(&sb, "Domain:  %s\n", id.Domain)
	if id.Tagline != "" {
		fmt.Fprintf(&sb, "Tagline: %s\n", id.Tagline)
	}
	if id.Font != "" {
		fmt.Fprintf(&sb, "Font:    %s\n", id.Font)
	}
	fmt.Fprintf(&sb, "Theme:   %s\n\n", id.Theme)

	slots := []struct {
		label string
		hex   string
	}{
		{"primary", id.Primary},
		{"accent", id.Accent},
		{"background", id.Background},
		{"text", id.Text},
	}
	for _, slot := range slots {
		if showPreview {
			if rgb, err := colour.ParseHex(slot.hex); err == nil {
				sb.WriteString(colour.PreviewWithLabel(rgb, slot.label, 8) + "\n")
				continue
			}
		}
		fmt.Fprintf(&sb, "%-12s %s\n", slot.label, slot.hex)
	}

	return sb.String()
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/brand"
	"github.com/jmylchreest/brandkit/internal/colour"
)

// overrides carries the manual flag overrides applied on top of the
// extracted identity.
type overrides struct {
	name       string
	primary    string
	accent     string
	background string
}

// extractIdentity runs the extraction pipeline for a command. A page
// fetch failure is not fatal - the identity falls back to a
// domain-derived name and the default palette.
func extractIdentity(ctx context.Context, cmd *cobra.Command, pageURL string, timeout time.Duration, ov overrides) (brand.Identity, error) {
	verbosef(cmd, "Analysing %s...\n", pageURL)

	id, err := brand.Extract(ctx, pageURL, brand.ExtractOptions{Timeout: timeout})
	if err != nil {
		if errors.Is(err, brand.ErrInvalidURL) {
			return brand.Identity{}, err
		}
		// Degrade to a domain-derived identity with the fallback
		// palette rather than failing the whole run.
		if !isQuiet(cmd) {
			fmt.Fprintf(os.Stderr, "Warning: %v (falling back to defaults)\n", err)
		}
		id = brand.Fallback(pageURL)
	}

	verbosef(cmd, "Found %d colours\n", len(id.Colours))
	verbosef(cmd, "Primary: %s\n", id.Primary)
	verbosef(cmd, "Accent: %s\n", id.Accent)
	verbosef(cmd, "Background: %s\n", id.Background)
	verbosef(cmd, "Theme: %s\n", id.Theme)

	applyOverrides(&id, ov)

	verbosef(cmd, "Name: %s (initials: %s)\n", id.Name, id.Initials())
	return id, nil
}

// applyOverrides replaces identity fields with any manual flag values.
func applyOverrides(id *brand.Identity, ov overrides) {
	if ov.name != "" {
		id.Name = ov.name
	}
	if hex := colour.Normalize(ov.primary); hex != "" {
		id.Primary = hex
	}
	if hex := colour.Normalize(ov.accent); hex != "" {
		id.Accent = hex
	}
	if hex := colour.Normalize(ov.background); hex != "" {
		id.Background = hex
	}
}

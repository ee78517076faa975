// Package cli provides the command-line interface for Brandkit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "A brand asset generator",
	Long: `Brandkit analyses a website and derives its brand identity: colours,
name, tagline and typography. From that identity it renders a complete
asset kit - favicon set, Open Graph image, web manifest and preview page.

Point it at a URL and it does the rest. Colours come from the site's
stylesheets; semantic CSS variables (--color-primary and friends) are
trusted over statistical inference when present.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// isVerbose reports whether --verbose was set (and --quiet was not).
func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return verbose && !quiet
}

// isQuiet reports whether --quiet was set.
func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}

// verbosef prints a diagnostic line to stderr when verbose is enabled.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if isVerbose(cmd) {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

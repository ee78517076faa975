package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandkit/internal/server"
)

var (
	serveListen  string
	serveTimeout time.Duration
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the brand kit HTTP server",
	Long: `Run an HTTP server that extracts brand identities and serves the
generated assets on demand: identity JSON, logo and OG previews (both
rendered PNGs and live HTML documents) and a zip download of the
complete kit.

Endpoints:
  GET /api/extract?url=...       identity as JSON
  GET /api/effects               available background effects
  GET /preview/logo?url=...      rendered logo PNG
  GET /preview/og?url=...        rendered OG image PNG
  GET /preview/logo.html?url=... live logo HTML
  GET /preview/og.html?url=...   live OG HTML
  GET /download?url=...          complete kit as a zip

Rendered images are cached in memory, keyed by the request parameters.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 10*time.Second, "HTTP timeout for page and stylesheet fetches")
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(server.Options{Timeout: serveTimeout})

	if !isQuiet(cmd) {
		fmt.Printf("Listening on %s\n", serveListen)
	}
	return srv.Run(cmd.Context(), serveListen)
}

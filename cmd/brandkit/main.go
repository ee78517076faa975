// Brandkit - a brand asset generator
//
// Brandkit analyses a website's markup and stylesheets to derive its brand
// colours and identity, then renders a matching favicon set and Open Graph
// image.
package main

import (
	"os"

	"github.com/jmylchreest/brandkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

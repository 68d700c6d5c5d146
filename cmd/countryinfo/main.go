// countryinfo is a CLI tool that answers country reference-data lookups.
package main

import (
	"github.com/savikov/countryinfo/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}

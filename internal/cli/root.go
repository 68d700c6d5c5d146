// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savikov/countryinfo/internal/config"
	"github.com/savikov/countryinfo/internal/locale"
	"github.com/savikov/countryinfo/internal/provider"
)

// Version information (set at build time)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags
var (
	jsonOutput  bool
	concurrency int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   config.AppName + " [code]",
	Short: "Country reference data - codes, phone prefixes, currencies, locales",
	Long: `countryinfo answers lookups over a bundled country dataset:
ISO codes, dialing prefixes, emoji flags, administrative regions,
currencies and locale associations.

For a single country:
  countryinfo US

For batch processing (read codes from stdin):
  cat codes.txt | countryinfo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", config.DefaultBatchConcurrency, "batch lookup concurrency")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(regionCmd)
	rootCmd.AddCommand(localesCmd)
	rootCmd.AddCommand(flagCmd)
	rootCmd.AddCommand(versionCmd)
}

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}

// newProvider builds the shared provider over the embedded dataset and the
// standard locale service.
func newProvider() (*provider.Provider, error) {
	svc, err := locale.NewStdService()
	if err != nil {
		return nil, err
	}
	return provider.New(svc)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (commit %s, built %s)\n", config.AppName, Version, Commit, BuildTime)
	},
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savikov/countryinfo/internal/batch"
	"github.com/savikov/countryinfo/internal/config"
	"github.com/savikov/countryinfo/internal/output"
)

func runLookup(cmd *cobra.Command, args []string) error {
	p, err := newProvider()
	if err != nil {
		return err
	}

	// No argument: batch mode reading codes from stdin.
	if len(args) == 0 {
		cfg := config.DefaultConfig()
		cfg.JSONOutput = jsonOutput
		cfg.Concurrency = concurrency
		cfg.ClampConcurrency()

		proc := batch.NewProcessor(p, cfg.Concurrency)
		return proc.ProcessInput(context.Background(), os.Stdin, os.Stdout, cfg.JSONOutput)
	}

	result := output.NewLookupResult(p, args[0])
	if jsonOutput {
		jsonStr, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
		if result.Error != "" {
			os.Exit(ExitNotFound)
		}
		return nil
	}
	if result.Error != "" {
		exitWithCode(ExitNotFound, fmt.Sprintf("%s: %s", args[0], result.Error))
	}
	fmt.Println(result.FormatText())
	return nil
}

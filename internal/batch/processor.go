// Package batch handles batch country-code processing from stdin.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/savikov/countryinfo/internal/output"
	"github.com/savikov/countryinfo/internal/provider"
)

// Processor handles batch country lookups.
type Processor struct {
	provider    *provider.Provider
	concurrency int
}

// NewProcessor creates a new batch processor.
func NewProcessor(p *provider.Provider, concurrency int) *Processor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{
		provider:    p,
		concurrency: concurrency,
	}
}

// ProcessInput reads country codes from input, one per line, and writes
// results to output in input order. Blank lines and #-comments are skipped.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var queries []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	results := make([]*output.LookupResult, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = output.NewLookupResult(p.provider, q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		batch := &output.BatchResult{Results: results}
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonStr)
		return nil
	}
	for _, result := range results {
		fmt.Fprintln(w, result.FormatText())
	}
	return nil
}

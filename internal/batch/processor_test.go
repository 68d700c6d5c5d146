package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/savikov/countryinfo/internal/countries"
	"github.com/savikov/countryinfo/internal/locale"
	"github.com/savikov/countryinfo/internal/provider"
)

type noopService struct{}

func (noopService) Tags() []string                           { return nil }
func (noopService) Resolve(string) (locale.Info, bool)       { return locale.Info{}, false }
func (noopService) ResolveRegion(string) (locale.Info, bool) { return locale.Info{}, false }
func (noopService) CurrentRegion() (string, bool)            { return "", false }

func testProvider(t *testing.T) *provider.Provider {
	t.Helper()
	list := []countries.Country{
		{Name: "Canada", ShortCode: "CA", PhoneCode: "+1", Flag: countries.Flag("CA")},
		{Name: "United Kingdom", ShortCode: "GB", PhoneCode: "+44", Flag: countries.Flag("GB")},
		{Name: "United States", ShortCode: "US", PhoneCode: "+1", Flag: countries.Flag("US")},
	}
	p, err := provider.NewFromCountries(list, noopService{})
	if err != nil {
		t.Fatalf("NewFromCountries failed: %v", err)
	}
	return p
}

func TestProcessInputOrder(t *testing.T) {
	p := testProvider(t)
	proc := NewProcessor(p, 4)

	input := "us\n\n# comment\ngb\nZZ\nca\n"
	var out bytes.Buffer
	if err := proc.ProcessInput(context.Background(), strings.NewReader(input), &out, false); err != nil {
		t.Fatalf("ProcessInput failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 result lines, got %d: %q", len(lines), out.String())
	}

	prefixes := []string{"US\t", "GB\t", "ZZ\t", "CA\t"}
	for i, prefix := range prefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, expected prefix %q (input order must be preserved)", i, lines[i], prefix)
		}
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Errorf("unknown code should produce an error line: %q", lines[2])
	}
}

func TestProcessInputJSON(t *testing.T) {
	p := testProvider(t)
	proc := NewProcessor(p, 2)

	input := "gb\nus\n"
	var out bytes.Buffer
	if err := proc.ProcessInput(context.Background(), strings.NewReader(input), &out, true); err != nil {
		t.Fatalf("ProcessInput failed: %v", err)
	}

	var results []map[string]any
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0]["code"] != "GB" || results[1]["code"] != "US" {
		t.Errorf("unexpected order: %v", results)
	}
}

func TestProcessInputEmpty(t *testing.T) {
	p := testProvider(t)
	proc := NewProcessor(p, 1)

	var out bytes.Buffer
	if err := proc.ProcessInput(context.Background(), strings.NewReader(""), &out, false); err != nil {
		t.Fatalf("ProcessInput failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestNewProcessorClampsConcurrency(t *testing.T) {
	p := testProvider(t)
	proc := NewProcessor(p, 0)
	if proc.concurrency != 1 {
		t.Errorf("concurrency = %d, expected 1", proc.concurrency)
	}
}

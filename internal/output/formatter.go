// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/savikov/countryinfo/internal/countries"
	"github.com/savikov/countryinfo/internal/provider"
)

// LookupResult contains the result of a country lookup.
type LookupResult struct {
	Query     string             `json:"query"`
	Code      string             `json:"code,omitempty"`
	Name      string             `json:"name,omitempty"`
	PhoneCode string             `json:"phone_code,omitempty"`
	Flag      string             `json:"flag,omitempty"`
	Currency  string             `json:"currency,omitempty"`
	Alpha3    string             `json:"alpha3,omitempty"`
	Locale    string             `json:"locale,omitempty"`
	Regions   []countries.Region `json:"regions,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// NewLookupResult assembles the full result for one country code query.
func NewLookupResult(p *provider.Provider, query string) *LookupResult {
	result := &LookupResult{Query: query}

	c, ok := p.ByCode(query)
	if !ok {
		result.Error = "unknown country code"
		return result
	}

	result.Code = c.ShortCode
	result.Name = c.Name
	result.PhoneCode = c.PhoneCode
	result.Flag = c.Flag
	result.Regions = c.Regions
	if info, ok := p.RegionInfo(c.ShortCode); ok {
		result.Currency = info.CurrencyCode
		result.Alpha3 = info.Alpha3
	}
	if tag, ok := p.PrimaryLocale(c.ShortCode); ok {
		result.Locale = tag
	}
	return result
}

// FormatText formats result as tab-separated text.
func (r *LookupResult) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", r.Query, r.Error)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		r.Code,
		r.Name,
		r.PhoneCode,
		orDash(r.Currency),
		orDash(r.Flag),
	)
}

// FormatJSON formats result as JSON.
func (r *LookupResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*LookupResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(b.Results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CountryLine formats one country as a listing row.
func CountryLine(c countries.Country) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s",
		c.ShortCode,
		c.Name,
		c.PhoneCode,
		orDash(c.Flag),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Package countries holds the bundled country dataset and its accessors.
package countries

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

//go:embed countries.json
var embeddedData []byte

// Region is an administrative division of a country. ShortCode may be empty.
type Region struct {
	Name      string `json:"name"`
	ShortCode string `json:"shortCode,omitempty"`
}

// Country is a single record of the bundled dataset. Flag is derived from
// ShortCode at load time and is not part of the serialized form.
type Country struct {
	Name      string   `json:"name"`
	ShortCode string   `json:"shortCode"`
	PhoneCode string   `json:"phoneCode"`
	Flag      string   `json:"flag,omitempty"`
	Regions   []Region `json:"regions,omitempty"`
}

// Load parses the embedded dataset.
func Load() ([]Country, error) {
	return Parse(bytes.NewReader(embeddedData))
}

// Parse decodes a country dataset from r. It fails on malformed input and on
// an empty list: a dataset with no countries means the embed is broken, not
// that there are no countries.
func Parse(r io.Reader) ([]Country, error) {
	var list []Country
	dec := json.NewDecoder(r)
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode country dataset: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("country dataset is empty")
	}
	for i := range list {
		if list[i].Name == "" {
			return nil, fmt.Errorf("country at index %d has no name", i)
		}
		if len(list[i].ShortCode) != 2 {
			return nil, fmt.Errorf("country %q has invalid short code %q", list[i].Name, list[i].ShortCode)
		}
		list[i].Flag = Flag(list[i].ShortCode)
	}
	return list, nil
}

const regionalIndicatorBase = 0x1F1E6

// Flag derives the emoji flag for a two-letter country code by shifting each
// letter into the regional-indicator range. Inputs that are not exactly two
// ASCII letters yield the empty string.
func Flag(code string) string {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return ""
	}
	out := make([]rune, 0, 2)
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return ""
		}
		out = append(out, regionalIndicatorBase+c-'A')
	}
	return string(out)
}

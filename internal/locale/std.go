package locale

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

//go:embed locales.json
var embeddedTags []byte

//go:embed currencies.json
var embeddedCurrencies []byte

// Territories that have not adopted the metric system.
var imperialRegions = map[string]struct{}{
	"US": {},
	"LR": {},
	"MM": {},
}

type currencyEntry struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// StdService is the default Service. Tag parsing and territory resolution
// come from golang.org/x/text; the tag catalog and currency display data are
// bundled with the binary.
type StdService struct {
	tags       []string
	currencies map[string]currencyEntry
	getenv     func(string) string
}

// NewStdService loads the bundled locale catalog and currency table.
func NewStdService() (*StdService, error) {
	var tags []string
	if err := json.Unmarshal(embeddedTags, &tags); err != nil {
		return nil, fmt.Errorf("decode locale catalog: %w", err)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("locale catalog is empty")
	}
	sort.Strings(tags)

	currencies := make(map[string]currencyEntry)
	if err := json.Unmarshal(embeddedCurrencies, &currencies); err != nil {
		return nil, fmt.Errorf("decode currency table: %w", err)
	}

	return &StdService{
		tags:       tags,
		currencies: currencies,
		getenv:     os.Getenv,
	}, nil
}

// Tags returns the bundled locale tags, sorted lexicographically.
func (s *StdService) Tags() []string {
	return s.tags
}

// Resolve parses tag and derives territory and currency metadata. The tag
// must carry an explicit region subtag; inferred regions (e.g. from a bare
// "de") are rejected so results never depend on x/text likely-subtag guesses.
func (s *StdService) Resolve(tag string) (Info, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Info{}, false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Info{}, false
	}
	region, conf := t.Region()
	if conf != language.Exact || !region.IsCountry() {
		return Info{}, false
	}
	base, _ := t.Base()

	info := s.regionInfo(region)
	info.Language = base.String()
	return info, true
}

// ResolveRegion derives territory metadata for a bare alpha-2 code.
func (s *StdService) ResolveRegion(code string) (Info, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Info{}, false
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return Info{}, false
	}
	return s.regionInfo(region), true
}

func (s *StdService) regionInfo(region language.Region) Info {
	info := Info{
		Region: region.String(),
		Alpha3: region.ISO3(),
	}
	if m49 := region.M49(); m49 > 0 {
		info.AltCode = fmt.Sprintf("%03d", m49)
	}
	if _, imperial := imperialRegions[info.Region]; !imperial {
		info.Metric = true
	}
	if unit, ok := currency.FromRegion(region); ok {
		info.CurrencyCode = unit.String()
		if entry, ok := s.currencies[info.CurrencyCode]; ok {
			info.CurrencySymbol = entry.Symbol
			info.CurrencyName = entry.Name
			info.CurrencyNativeName = entry.NativeName
		}
	}
	return info
}

// CurrentRegion derives the ambient region from LC_ALL/LC_MESSAGES/LANG,
// e.g. "en_US.UTF-8" yields "US".
func (s *StdService) CurrentRegion() (string, bool) {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := strings.TrimSpace(s.getenv(name))
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}
		if i := strings.IndexAny(raw, ".@"); i >= 0 {
			raw = raw[:i]
		}
		t, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
		if err != nil {
			continue
		}
		region, conf := t.Region()
		if conf != language.Exact || !region.IsCountry() {
			continue
		}
		return region.String(), true
	}
	return "", false
}

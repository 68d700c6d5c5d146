// Package provider exposes read-only queries over the bundled country
// dataset. A Provider is built once, is immutable afterwards, and is safe
// for concurrent use; derived indexes are built lazily on first use.
package provider

import (
	"fmt"
	"strings"

	"github.com/savikov/countryinfo/internal/countries"
	"github.com/savikov/countryinfo/internal/locale"
)

// Provider answers country lookups. Construct with New or NewFromCountries;
// the zero value is not usable.
type Provider struct {
	locales locale.Service
	list    []countries.Country
	byCode  map[string]countries.Country

	regionIdx   lazy[map[string]*locale.Info]
	primaryIdx  lazy[map[string]string]
	allTagsIdx  lazy[map[string][]string]
	phoneIdx    lazy[map[string][]countries.Country]
	currencyIdx lazy[map[string][]countries.Country]
	languageIdx lazy[map[string][]countries.Country]
}

// New builds a Provider from the embedded dataset.
func New(svc locale.Service) (*Provider, error) {
	list, err := countries.Load()
	if err != nil {
		return nil, err
	}
	return NewFromCountries(list, svc)
}

// NewFromCountries builds a Provider from an explicit dataset. The slice is
// retained as-is and must not be mutated afterwards.
func NewFromCountries(list []countries.Country, svc locale.Service) (*Provider, error) {
	if svc == nil {
		return nil, fmt.Errorf("nil locale service")
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("empty country dataset")
	}
	byCode := make(map[string]countries.Country, len(list))
	for _, c := range list {
		key := normCode(c.ShortCode)
		if _, dup := byCode[key]; dup {
			return nil, fmt.Errorf("duplicate country short code %q", c.ShortCode)
		}
		byCode[key] = c
	}
	return &Provider{
		locales: svc,
		list:    list,
		byCode:  byCode,
	}, nil
}

// normCode is the uniform key normalization for short codes: ordinal,
// case-insensitive, whitespace-trimmed.
func normCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// All returns every country in dataset order. The same underlying slice is
// returned on every call; callers must treat it as read-only.
func (p *Provider) All() []countries.Country {
	return p.list
}

// Names returns the display name of every country in dataset order.
func (p *Provider) Names() []string {
	names := make([]string, len(p.list))
	for i, c := range p.list {
		names[i] = c.Name
	}
	return names
}

// ByCode returns the country with the given two-letter code.
func (p *Provider) ByCode(code string) (countries.Country, bool) {
	key := normCode(code)
	if key == "" {
		return countries.Country{}, false
	}
	c, ok := p.byCode[key]
	return c, ok
}

// Flag returns the emoji flag for a two-letter code, or "" for input that is
// not two ASCII letters. It does not consult the dataset.
func (p *Provider) Flag(code string) string {
	return countries.Flag(code)
}

// PhoneCode returns the dialing prefix of the country with the given code.
func (p *Provider) PhoneCode(code string) (string, bool) {
	c, ok := p.ByCode(code)
	if !ok {
		return "", false
	}
	return c.PhoneCode, true
}

// ByPhoneCode returns every country sharing the given dialing prefix, in
// dataset order. The prefix is matched exactly after trimming whitespace.
func (p *Provider) ByPhoneCode(phoneCode string) []countries.Country {
	phoneCode = strings.TrimSpace(phoneCode)
	if phoneCode == "" {
		return nil
	}
	return p.phoneIndex()[phoneCode]
}

// Regions returns the administrative regions of the country with the given
// code, or nil if the country is unknown or has none.
func (p *Provider) Regions(code string) []countries.Region {
	c, ok := p.ByCode(code)
	if !ok {
		return nil
	}
	return c.Regions
}

// ByRegionName returns every country that has a region with the given name
// (case-insensitive). This is a deliberate full scan: region names are not
// indexed, and callers that query them repeatedly should build their own
// lookup from All.
func (p *Provider) ByRegionName(name string) []countries.Country {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	var out []countries.Country
	for _, c := range p.list {
		for _, r := range c.Regions {
			if strings.EqualFold(r.Name, name) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

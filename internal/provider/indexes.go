package provider

import (
	"strings"

	"github.com/savikov/countryinfo/internal/countries"
	"github.com/savikov/countryinfo/internal/locale"
)

// The derived indexes below are each a pure function of the dataset and the
// locale service. A failed per-entry resolution never aborts a build: the
// entry is stored as absent (region index) or left out of its group.

// regionIndex maps short code -> territory metadata. Codes the locale
// service cannot resolve map to nil, so misses are cached and never retried.
func (p *Provider) regionIndex() map[string]*locale.Info {
	return p.regionIdx.value(func() map[string]*locale.Info {
		m := make(map[string]*locale.Info, len(p.list))
		for _, c := range p.list {
			if info, ok := p.locales.ResolveRegion(c.ShortCode); ok {
				m[normCode(c.ShortCode)] = &info
			} else {
				m[normCode(c.ShortCode)] = nil
			}
		}
		return m
	})
}

// primaryTagIndex maps short code -> the first catalog tag whose territory
// is that country. "First" follows Tags() order, which the Service contract
// fixes as lexicographic.
func (p *Provider) primaryTagIndex() map[string]string {
	return p.primaryIdx.value(func() map[string]string {
		m := make(map[string]string, len(p.list))
		for _, tag := range p.locales.Tags() {
			info, ok := p.locales.Resolve(tag)
			if !ok {
				continue
			}
			key := normCode(info.Region)
			if _, known := p.byCode[key]; !known {
				continue
			}
			if _, done := m[key]; !done {
				m[key] = tag
			}
		}
		return m
	})
}

// allTagsIndex maps short code -> every catalog tag for that country, in
// Tags() order.
func (p *Provider) allTagsIndex() map[string][]string {
	return p.allTagsIdx.value(func() map[string][]string {
		m := make(map[string][]string, len(p.list))
		for _, tag := range p.locales.Tags() {
			info, ok := p.locales.Resolve(tag)
			if !ok {
				continue
			}
			key := normCode(info.Region)
			if _, known := p.byCode[key]; !known {
				continue
			}
			m[key] = append(m[key], tag)
		}
		return m
	})
}

// phoneIndex groups countries by exact dialing prefix, in dataset order.
func (p *Provider) phoneIndex() map[string][]countries.Country {
	return p.phoneIdx.value(func() map[string][]countries.Country {
		m := make(map[string][]countries.Country)
		for _, c := range p.list {
			m[c.PhoneCode] = append(m[c.PhoneCode], c)
		}
		return m
	})
}

// currencyIndex groups countries by the currency code of their territory
// metadata. Countries whose metadata cannot be resolved are excluded.
// Building this index builds the region index as a side effect.
func (p *Provider) currencyIndex() map[string][]countries.Country {
	return p.currencyIdx.value(func() map[string][]countries.Country {
		region := p.regionIndex()
		m := make(map[string][]countries.Country)
		for _, c := range p.list {
			info := region[normCode(c.ShortCode)]
			if info == nil || info.CurrencyCode == "" {
				continue
			}
			key := strings.ToUpper(info.CurrencyCode)
			m[key] = append(m[key], c)
		}
		return m
	})
}

// languageIndex groups countries by base language subtag, derived from the
// catalog's (language, territory) pairs. Each country appears at most once
// per language, in dataset-independent first-seen order of the catalog.
func (p *Provider) languageIndex() map[string][]countries.Country {
	return p.languageIdx.value(func() map[string][]countries.Country {
		seen := make(map[string]map[string]struct{})
		m := make(map[string][]countries.Country)
		for _, tag := range p.locales.Tags() {
			info, ok := p.locales.Resolve(tag)
			if !ok || info.Language == "" {
				continue
			}
			c, known := p.byCode[normCode(info.Region)]
			if !known {
				continue
			}
			lang := strings.ToLower(info.Language)
			if seen[lang] == nil {
				seen[lang] = make(map[string]struct{})
			}
			if _, dup := seen[lang][c.ShortCode]; dup {
				continue
			}
			seen[lang][c.ShortCode] = struct{}{}
			m[lang] = append(m[lang], c)
		}
		return m
	})
}

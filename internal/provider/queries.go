package provider

import (
	"strings"

	"github.com/savikov/countryinfo/internal/countries"
	"github.com/savikov/countryinfo/internal/locale"
)

// RegionInfo returns the territory metadata for a country code, or false if
// the country is unknown or its metadata could not be resolved.
func (p *Provider) RegionInfo(code string) (locale.Info, bool) {
	key := normCode(code)
	if key == "" {
		return locale.Info{}, false
	}
	info, ok := p.regionIndex()[key]
	if !ok || info == nil {
		return locale.Info{}, false
	}
	return *info, true
}

// CurrencySymbol returns the currency symbol for a country code.
func (p *Provider) CurrencySymbol(code string) (string, bool) {
	info, ok := p.RegionInfo(code)
	if !ok || info.CurrencySymbol == "" {
		return "", false
	}
	return info.CurrencySymbol, true
}

// CurrencyName returns the English currency name for a country code.
func (p *Provider) CurrencyName(code string) (string, bool) {
	info, ok := p.RegionInfo(code)
	if !ok || info.CurrencyName == "" {
		return "", false
	}
	return info.CurrencyName, true
}

// CurrencyNativeName returns the native currency name for a country code.
func (p *Provider) CurrencyNativeName(code string) (string, bool) {
	info, ok := p.RegionInfo(code)
	if !ok || info.CurrencyNativeName == "" {
		return "", false
	}
	return info.CurrencyNativeName, true
}

// IsMetric reports whether the country uses the metric system. Unknown
// countries report false.
func (p *Provider) IsMetric(code string) bool {
	info, ok := p.RegionInfo(code)
	return ok && info.Metric
}

// Alpha3 returns the ISO 3166-1 alpha-3 code for a two-letter country code.
func (p *Provider) Alpha3(code string) (string, bool) {
	info, ok := p.RegionInfo(code)
	if !ok || info.Alpha3 == "" {
		return "", false
	}
	return info.Alpha3, true
}

// AltCode returns the UN M.49 numeric code for a two-letter country code.
func (p *Provider) AltCode(code string) (string, bool) {
	info, ok := p.RegionInfo(code)
	if !ok || info.AltCode == "" {
		return "", false
	}
	return info.AltCode, true
}

// PrimaryLocale returns the first catalog locale tag for a country, in the
// locale service's fixed tag order.
func (p *Provider) PrimaryLocale(code string) (string, bool) {
	key := normCode(code)
	if key == "" {
		return "", false
	}
	tag, ok := p.primaryTagIndex()[key]
	return tag, ok
}

// Locales returns every catalog locale tag for a country.
func (p *Provider) Locales(code string) []string {
	key := normCode(code)
	if key == "" {
		return nil
	}
	return p.allTagsIndex()[key]
}

// SpecificLocale builds the candidate tag "language-CODE" and asks the
// locale service to resolve it directly; it is not index-backed. The result
// is the candidate tag, or false if the service rejects it or resolves it to
// a different territory.
func (p *Provider) SpecificLocale(code, lang string) (string, bool) {
	code = strings.TrimSpace(code)
	lang = strings.TrimSpace(lang)
	if code == "" || lang == "" {
		return "", false
	}
	candidate := strings.ToLower(lang) + "-" + strings.ToUpper(code)
	info, ok := p.locales.Resolve(candidate)
	if !ok || !strings.EqualFold(info.Region, code) {
		return "", false
	}
	return candidate, true
}

// ByLocale resolves a locale tag to its territory and returns that single
// country, if it is in the dataset.
func (p *Provider) ByLocale(tag string) (countries.Country, bool) {
	info, ok := p.locales.Resolve(strings.TrimSpace(tag))
	if !ok {
		return countries.Country{}, false
	}
	return p.ByCode(info.Region)
}

// ByLanguage returns every country associated with a base language subtag.
func (p *Provider) ByLanguage(lang string) []countries.Country {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil
	}
	return p.languageIndex()[lang]
}

// ByCurrency returns every country whose territory uses the given currency,
// in dataset order.
func (p *Provider) ByCurrency(currencyCode string) []countries.Country {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if currencyCode == "" {
		return nil
	}
	return p.currencyIndex()[currencyCode]
}

// Current returns the country of the caller's ambient region. Failure to
// detect an ambient region is an ordinary miss, never an error.
func (p *Provider) Current() (countries.Country, bool) {
	region, ok := p.locales.CurrentRegion()
	if !ok {
		return countries.Country{}, false
	}
	return p.ByCode(region)
}

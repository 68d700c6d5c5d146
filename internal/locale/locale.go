// Package locale resolves IETF locale tags to region and currency metadata.
package locale

// Info is the metadata a locale tag resolves to.
type Info struct {
	// Region is the ISO 3166-1 alpha-2 code of the tag's territory.
	Region string
	// Language is the tag's base language subtag (e.g. "en").
	Language string
	// Alpha3 is the ISO 3166-1 alpha-3 code of the territory.
	Alpha3 string
	// AltCode is the UN M.49 numeric code of the territory, zero-padded to
	// three digits, or empty if none is defined.
	AltCode string

	CurrencyCode       string
	CurrencySymbol     string
	CurrencyName       string
	CurrencyNativeName string

	// Metric reports whether the territory uses the metric system.
	Metric bool
}

// Service is the capability surface the provider needs from a locale
// subsystem. Implementations must be safe for concurrent use.
type Service interface {
	// Tags returns every known locale tag in lexicographic order. The
	// result must be identical across calls within a process; callers
	// treat the slice as read-only.
	Tags() []string

	// Resolve maps a locale tag to its territory metadata. It reports
	// false for blank, malformed, or region-less tags.
	Resolve(tag string) (Info, bool)

	// ResolveRegion maps a bare alpha-2 region code to its territory
	// metadata. The Language field of the result is empty.
	ResolveRegion(code string) (Info, bool)

	// CurrentRegion returns the alpha-2 region code of the caller's
	// ambient locale, or false if none can be detected.
	CurrentRegion() (string, bool)
}

package domain

// Locale is a supported site language code.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// Locales lists every locale the site publishes in, in display order.
var Locales = []Locale{LocaleEN, LocaleZH}

// LocalizedString holds the per-language variants of a string.
// Stored as a JSON column.
type LocalizedString map[Locale]string

// Get returns the value for a locale, falling back to English.
func (s LocalizedString) Get(locale Locale) string {
	if v, ok := s[locale]; ok && v != "" {
		return v
	}
	return s[LocaleEN]
}

// Clone returns a deep copy. A nil map stays nil.
func (s LocalizedString) Clone() LocalizedString {
	if s == nil {
		return nil
	}
	out := make(LocalizedString, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

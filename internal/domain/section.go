package domain

import (
	"encoding/json"
	"fmt"
)

// SectionType categorizes a content section for rendering.
type SectionType string

const (
	SectionText            SectionType = "text"
	SectionImage           SectionType = "image"
	SectionVideo           SectionType = "video"
	SectionList            SectionType = "list"
	SectionQuote           SectionType = "quote"
	SectionComparisonTable SectionType = "comparison-table"
)

// SectionContent is either a plain string shared by every locale or a
// per-locale map. Exactly one of the two forms is set; the JSON shape
// follows whichever is present.
type SectionContent struct {
	Plain     string          `json:"-"`
	Localized LocalizedString `json:"-"`
}

// NewPlainContent wraps a single string value.
func NewPlainContent(s string) SectionContent {
	return SectionContent{Plain: s}
}

// NewLocalizedContent wraps a per-locale map.
func NewLocalizedContent(m LocalizedString) SectionContent {
	return SectionContent{Localized: m}
}

// IsLocalized reports whether the content carries per-locale values.
func (c SectionContent) IsLocalized() bool {
	return c.Localized != nil
}

// ForLocale resolves the content string for one locale.
func (c SectionContent) ForLocale(locale Locale) string {
	if c.Localized != nil {
		return c.Localized.Get(locale)
	}
	return c.Plain
}

// Clone returns a deep copy.
func (c SectionContent) Clone() SectionContent {
	return SectionContent{Plain: c.Plain, Localized: c.Localized.Clone()}
}

// MarshalJSON emits a bare string for plain content and an object for
// localized content.
func (c SectionContent) MarshalJSON() ([]byte, error) {
	if c.Localized != nil {
		return json.Marshal(c.Localized)
	}
	return json.Marshal(c.Plain)
}

// UnmarshalJSON accepts either a bare string or a locale map.
func (c *SectionContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Plain = s
		c.Localized = nil
		return nil
	}
	var m LocalizedString
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("section content must be a string or a locale map: %w", err)
	}
	c.Plain = ""
	c.Localized = m
	return nil
}

// Section is one ordered block inside a locale's content.
// Order is dense within the section list; reordering renumbers
// the affected sections contiguously.
type Section struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Content SectionContent `json:"content"`
	Order   int            `json:"order"`
}

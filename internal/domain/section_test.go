package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionContent_JSONShapes(t *testing.T) {
	t.Run("plain string", func(t *testing.T) {
		content := NewPlainContent("hello {{name}}")

		data, err := json.Marshal(content)
		assert.NoError(t, err)
		assert.Equal(t, `"hello {{name}}"`, string(data))

		var decoded SectionContent
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.False(t, decoded.IsLocalized())
		assert.Equal(t, "hello {{name}}", decoded.Plain)
	})

	t.Run("locale map", func(t *testing.T) {
		content := NewLocalizedContent(LocalizedString{LocaleEN: "hello", LocaleZH: "你好"})

		data, err := json.Marshal(content)
		assert.NoError(t, err)

		var decoded SectionContent
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, decoded.IsLocalized())
		assert.Equal(t, "hello", decoded.ForLocale(LocaleEN))
		assert.Equal(t, "你好", decoded.ForLocale(LocaleZH))
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var decoded SectionContent
		assert.Error(t, json.Unmarshal([]byte(`42`), &decoded))
	})
}

func TestSectionContent_ForLocaleFallback(t *testing.T) {
	content := NewLocalizedContent(LocalizedString{LocaleEN: "english only"})
	assert.Equal(t, "english only", content.ForLocale(LocaleZH))
}

func TestLocalizedString_Clone(t *testing.T) {
	original := LocalizedString{LocaleEN: "a"}
	clone := original.Clone()
	clone[LocaleEN] = "b"
	assert.Equal(t, "a", original[LocaleEN])

	var empty LocalizedString
	assert.Nil(t, empty.Clone())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Vultr Review 2025: Is It Worth It?", "vultr-review-2025-is-it-worth-it"},
		{"whitespace runs collapse", "a   b\t c", "a-b-c"},
		{"leading and trailing trimmed", "  -Best VPS-  ", "best-vps"},
		{"hyphens kept", "e-commerce guide", "e-commerce-guide"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	title := "Best Cloud Hosting of 2025"
	assert.Equal(t, Slugify(title), Slugify(title))
}

package domain

import (
	"strings"
	"time"
	"unicode"
)

// ContentType is the page type of a content record. Immutable after creation.
type ContentType string

const (
	ContentRecommendation ContentType = "recommendation"
	ContentReview         ContentType = "review"
	ContentComparison     ContentType = "comparison"
	ContentTutorial       ContentType = "tutorial"
	ContentResource       ContentType = "resource"
)

// ContentTypes lists every valid content type.
var ContentTypes = []ContentType{
	ContentRecommendation, ContentReview, ContentComparison, ContentTutorial, ContentResource,
}

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	for _, ct := range ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// ContentStatus is the publication state of a content record.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
	StatusScheduled ContentStatus = "scheduled"
)

// SEOFields holds the per-locale SEO strings of a page.
type SEOFields struct {
	Title       LocalizedString `json:"title"`
	Description LocalizedString `json:"description"`
	Keywords    LocalizedString `json:"keywords"`
}

// Clone returns a deep copy.
func (s SEOFields) Clone() SEOFields {
	return SEOFields{
		Title:       s.Title.Clone(),
		Description: s.Description.Clone(),
		Keywords:    s.Keywords.Clone(),
	}
}

// LocalizedBody is one locale's body: an intro paragraph plus ordered sections.
type LocalizedBody struct {
	Intro    string    `json:"intro"`
	Sections []Section `json:"sections"`
}

// ContentBody maps each locale to its body.
type ContentBody map[Locale]LocalizedBody

// Clone returns a deep copy.
func (b ContentBody) Clone() ContentBody {
	if b == nil {
		return nil
	}
	out := make(ContentBody, len(b))
	for locale, body := range b {
		sections := make([]Section, len(body.Sections))
		for i, sec := range body.Sections {
			sections[i] = sec
			sections[i].Content = sec.Content.Clone()
		}
		out[locale] = LocalizedBody{Intro: body.Intro, Sections: sections}
	}
	return out
}

// ContentRecord is a publishable unit of site content.
// Slug is globally unique; Type is immutable after creation.
type ContentRecord struct {
	ID                 string          `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Type               ContentType     `gorm:"column:type;type:varchar(20);index" json:"type"`
	Title              LocalizedString `gorm:"column:title;serializer:json" json:"title"`
	Slug               string          `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	Status             ContentStatus   `gorm:"column:status;type:varchar(20);index" json:"status"`
	ScheduledPublishAt *time.Time      `gorm:"column:scheduled_publish_at" json:"scheduledPublishAt,omitempty"`
	SEO                SEOFields       `gorm:"column:seo;serializer:json" json:"seo"`
	Content            ContentBody     `gorm:"column:content;serializer:json" json:"content"`
	FeaturedImage      string          `gorm:"column:featured_image;type:varchar(512)" json:"featuredImage,omitempty"`
	Gallery            []string        `gorm:"column:gallery;serializer:json" json:"gallery,omitempty"`
	Author             string          `gorm:"column:author;type:varchar(100)" json:"author"`
	Locale             Locale          `gorm:"column:locale;type:varchar(5)" json:"locale"`
	CreatedAt          time.Time       `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"column:updated_at" json:"updatedAt"`
	PublishedAt        *time.Time      `gorm:"column:published_at" json:"publishedAt,omitempty"`
}

func (ContentRecord) TableName() string { return "contents" }

// IsPublished reports whether the record is live.
func (c *ContentRecord) IsPublished() bool { return c.Status == StatusPublished }

// ContentFields is the persistable field set of a content record without
// identity or timestamps. The template engine renders into this shape;
// the repository create operation turns it into a ContentRecord.
type ContentFields struct {
	Type          ContentType     `json:"type"`
	Title         LocalizedString `json:"title"`
	Slug          string          `json:"slug"`
	SEO           SEOFields       `json:"seo"`
	Content       ContentBody     `json:"content"`
	FeaturedImage string          `json:"featuredImage,omitempty"`
	Gallery       []string        `json:"gallery,omitempty"`
	Locale        Locale          `json:"locale"`
}

// Slugify derives a URL slug from a title: lowercase, strip everything
// but letters, digits, hyphens and spaces, collapse whitespace runs to
// single hyphens, and trim leading/trailing hyphens.
func Slugify(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	return strings.Trim(slug, "-")
}

// CreateContentRequest is the manual-editor create payload.
type CreateContentRequest struct {
	Type               ContentType     `json:"type" binding:"required"`
	Title              LocalizedString `json:"title" binding:"required"`
	Slug               string          `json:"slug"`
	Status             ContentStatus   `json:"status"`
	ScheduledPublishAt *time.Time      `json:"scheduledPublishAt"`
	SEO                SEOFields       `json:"seo"`
	Content            ContentBody     `json:"content"`
	FeaturedImage      string          `json:"featuredImage"`
	Gallery            []string        `json:"gallery"`
	Locale             Locale          `json:"locale"`
}

// UpdateContentRequest carries a partial update; nil pointers leave the
// corresponding field untouched (shallow merge).
type UpdateContentRequest struct {
	Title              LocalizedString  `json:"title"`
	Slug               *string          `json:"slug"`
	Status             *ContentStatus   `json:"status"`
	ScheduledPublishAt *time.Time       `json:"scheduledPublishAt"`
	SEO                *SEOFields       `json:"seo"`
	Content            ContentBody      `json:"content"`
	FeaturedImage      *string          `json:"featuredImage"`
	Gallery            *[]string        `json:"gallery"`
	Locale             *Locale          `json:"locale"`
	Comment            string           `json:"comment"`
}

package domain

import "time"

// SEORule is the per-pageType string-template record driving the SEO
// generator. Templates use single-brace {key} tokens (the template
// engine's sections use double-brace {{name}} tokens; the two syntaxes
// are intentionally distinct, see internal/seo).
type SEORule struct {
	ID                  string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	PageType            ContentType `gorm:"column:page_type;type:varchar(20);uniqueIndex" json:"pageType"`
	TitleTemplate       string    `gorm:"column:title_template;type:varchar(255)" json:"titleTemplate"`
	DescriptionTemplate string    `gorm:"column:description_template;type:varchar(500)" json:"descriptionTemplate"`
	Keywords            []string  `gorm:"column:keywords;serializer:json" json:"keywords"`
	HeadingTemplates    []string  `gorm:"column:heading_templates;serializer:json" json:"headingTemplates"`
	TitleMin            int       `gorm:"column:title_min" json:"titleMin"`
	TitleMax            int       `gorm:"column:title_max" json:"titleMax"`
	DescriptionMin      int       `gorm:"column:description_min" json:"descriptionMin"`
	DescriptionMax      int       `gorm:"column:description_max" json:"descriptionMax"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (SEORule) TableName() string { return "seo_rules" }

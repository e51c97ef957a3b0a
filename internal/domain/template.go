package domain

import "time"

// VariableType is the input type of a template variable.
type VariableType string

const (
	VariableText    VariableType = "text"
	VariableNumber  VariableType = "number"
	VariableBoolean VariableType = "boolean"
	VariableSelect  VariableType = "select"
	VariableImage   VariableType = "image"
)

// VariableOption is one choice of a select variable.
type VariableOption struct {
	Value string          `json:"value"`
	Label LocalizedString `json:"label"`
}

// TemplateVariable declares one typed slot of a template.
// Name is unique within its template.
type TemplateVariable struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     VariableType     `json:"type"`
	Label    LocalizedString  `json:"label"`
	Required bool             `json:"required"`
	Default  any              `json:"defaultValue,omitempty"`
	Options  []VariableOption `json:"options,omitempty"`
}

// TemplateSectionType identifies a structural slot in a template.
// The five reserved types (title, intro, seo-*) feed dedicated fields of
// the rendered output; all other types become body sections.
type TemplateSectionType string

const (
	TplSectionTitle           TemplateSectionType = "title"
	TplSectionIntro           TemplateSectionType = "intro"
	TplSectionText            TemplateSectionType = "text"
	TplSectionImage           TemplateSectionType = "image"
	TplSectionVideo           TemplateSectionType = "video"
	TplSectionComparisonTable TemplateSectionType = "comparison-table"
	TplSectionSEOTitle        TemplateSectionType = "seo-title"
	TplSectionSEODescription  TemplateSectionType = "seo-description"
	TplSectionSEOKeywords     TemplateSectionType = "seo-keywords"
)

// Reserved reports whether the section type feeds a dedicated output
// field rather than the body section list.
func (t TemplateSectionType) Reserved() bool {
	switch t {
	case TplSectionTitle, TplSectionIntro, TplSectionSEOTitle, TplSectionSEODescription, TplSectionSEOKeywords:
		return true
	}
	return false
}

// BodySectionType maps a non-reserved template section type to the
// content section type it produces.
func (t TemplateSectionType) BodySectionType() SectionType {
	switch t {
	case TplSectionImage:
		return SectionImage
	case TplSectionVideo:
		return SectionVideo
	case TplSectionComparisonTable:
		return SectionComparisonTable
	default:
		return SectionText
	}
}

// TemplateSection is one slot of a template structure. Content may hold
// {{variableName}} placeholder tokens.
type TemplateSection struct {
	ID      string              `json:"id"`
	Type    TemplateSectionType `json:"type"`
	Content SectionContent      `json:"content"`
	Order   int                 `json:"order"`
}

// TemplateStructure is the ordered section skeleton of a template.
type TemplateStructure struct {
	Sections []TemplateSection `json:"sections"`
}

// Template is a reusable content skeleton with typed variable slots.
type Template struct {
	ID          string             `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name        string             `gorm:"column:name;type:varchar(100)" json:"name"`
	Description string             `gorm:"column:description;type:varchar(500)" json:"description"`
	Type        ContentType        `gorm:"column:type;type:varchar(20)" json:"type"`
	Variables   []TemplateVariable `gorm:"column:variables;serializer:json" json:"variables"`
	Structure   TemplateStructure  `gorm:"column:structure;serializer:json" json:"structure"`
	CreatedAt   time.Time          `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time          `gorm:"column:updated_at" json:"updatedAt"`
}

func (Template) TableName() string { return "templates" }

// Variable looks up a declared variable by name.
func (t *Template) Variable(name string) (*TemplateVariable, bool) {
	for i := range t.Variables {
		if t.Variables[i].Name == name {
			return &t.Variables[i], true
		}
	}
	return nil, false
}

// CreateTemplateRequest is the admin create payload.
type CreateTemplateRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Type        ContentType        `json:"type" binding:"required"`
	Variables   []TemplateVariable `json:"variables"`
	Structure   TemplateStructure  `json:"structure"`
}

// PreviewRequest carries the variable values for a render preview.
type PreviewRequest struct {
	Variables map[string]any `json:"variables"`
}

package domain

import "time"

// TemplateInstance records one concrete filling-in of a template's
// variables. ContentID stays nil until the rendered record is persisted
// by materialization.
type TemplateInstance struct {
	ID         string         `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	TemplateID string         `gorm:"column:template_id;type:varchar(36);index" json:"templateId"`
	Variables  map[string]any `gorm:"column:variables;serializer:json" json:"variables"`
	ContentID  *string        `gorm:"column:content_id;type:varchar(36)" json:"contentId,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"column:updated_at" json:"updatedAt"`
}

func (TemplateInstance) TableName() string { return "template_instances" }

// CreateInstanceRequest creates an instance ahead of materialization.
type CreateInstanceRequest struct {
	TemplateID string         `json:"templateId" binding:"required"`
	Variables  map[string]any `json:"variables"`
}

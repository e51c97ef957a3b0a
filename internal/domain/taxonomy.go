package domain

import "time"

// Category groups contents for site navigation.
type Category struct {
	ID          string          `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name        LocalizedString `gorm:"column:name;serializer:json" json:"name"`
	Slug        string          `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	Description LocalizedString `gorm:"column:description;serializer:json" json:"description"`
	OrderNum    int             `gorm:"column:order_num" json:"orderNum"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

// Tag is a flat label attached to contents.
type Tag struct {
	ID        string          `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name      LocalizedString `gorm:"column:name;serializer:json" json:"name"`
	Slug      string          `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"createdAt"`
}

func (Tag) TableName() string { return "tags" }

// CreateCategoryRequest is the admin create payload.
type CreateCategoryRequest struct {
	Name        LocalizedString `json:"name" binding:"required"`
	Slug        string          `json:"slug"`
	Description LocalizedString `json:"description"`
	OrderNum    int             `json:"orderNum"`
}

// CreateTagRequest is the admin create payload.
type CreateTagRequest struct {
	Name LocalizedString `json:"name" binding:"required"`
	Slug string          `json:"slug"`
}

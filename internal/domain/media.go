package domain

import "time"

// Media is an uploaded asset in the media library. URL points at the
// CDN (or bucket) location; Key is the storage object key.
type Media struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	FileName    string    `gorm:"column:file_name;type:varchar(255)" json:"fileName"`
	Key         string    `gorm:"column:key;type:varchar(512)" json:"key"`
	URL         string    `gorm:"column:url;type:varchar(512)" json:"url"`
	ContentType string    `gorm:"column:content_type;type:varchar(100)" json:"contentType"`
	Size        int64     `gorm:"column:size" json:"size"`
	Alt         string    `gorm:"column:alt;type:varchar(255)" json:"alt,omitempty"`
	UploadedBy  string    `gorm:"column:uploaded_by;type:varchar(100)" json:"uploadedBy"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"createdAt"`
}

func (Media) TableName() string { return "media" }

package domain

import "time"

// VersionSnapshot is an immutable historical copy of a content record.
// Version numbers are strictly increasing per content ID, starting at 1.
// Rollback never mutates a snapshot; it writes a new one on top.
type VersionSnapshot struct {
	ID        string        `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	ContentID string        `gorm:"column:content_id;type:varchar(36);index:idx_content_version,unique,priority:1" json:"contentId"`
	Version   int           `gorm:"column:version;index:idx_content_version,unique,priority:2" json:"version"`
	Record    ContentRecord `gorm:"column:record;serializer:json" json:"record"`
	UpdatedBy string        `gorm:"column:updated_by;type:varchar(100)" json:"updatedBy"`
	Comment   string        `gorm:"column:comment;type:varchar(255)" json:"comment,omitempty"`
	CreatedAt time.Time     `gorm:"column:created_at" json:"createdAt"`
}

func (VersionSnapshot) TableName() string { return "content_versions" }

// VersionListItem is the trimmed list representation (no full record copy).
type VersionListItem struct {
	ID        string    `json:"id"`
	ContentID string    `json:"contentId"`
	Version   int       `json:"version"`
	UpdatedBy string    `json:"updatedBy"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToListItem drops the record payload for list views.
func (v *VersionSnapshot) ToListItem() VersionListItem {
	return VersionListItem{
		ID:        v.ID,
		ContentID: v.ContentID,
		Version:   v.Version,
		UpdatedBy: v.UpdatedBy,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
	}
}

// RollbackRequest triggers a rollback to a past version, addressed
// either by snapshot id or by version number.
type RollbackRequest struct {
	VersionID string `json:"versionId"`
	Version   int    `json:"version"`
	UpdatedBy string `json:"updatedBy"`
}

package repository

import (
	"errors"

	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository content record data access
type ContentRepository interface {
	Create(record *domain.ContentRecord) error
	FindByID(id string) (*domain.ContentRecord, error)
	FindBySlug(slug string) (*domain.ContentRecord, error)
	ExistsBySlug(slug string, excludeID string) (bool, error)
	Save(record *domain.ContentRecord) error
	// Delete removes the record and its version rows in one transaction
	// (the SQL schema's cascade is authoritative here).
	Delete(id string) error
	ListPaged(page, pageSize int) ([]*domain.ContentRecord, int64, error)
	Search(keyword string, page, pageSize int) ([]*domain.ContentRecord, int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(record *domain.ContentRecord) error {
	return r.db.Create(record).Error
}

func (r *contentRepository) FindByID(id string) (*domain.ContentRecord, error) {
	var record domain.ContentRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *contentRepository) FindBySlug(slug string) (*domain.ContentRecord, error) {
	var record domain.ContentRecord
	if err := r.db.Where("slug = ?", slug).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *contentRepository) ExistsBySlug(slug string, excludeID string) (bool, error) {
	var count int64
	q := r.db.Model(&domain.ContentRecord{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *contentRepository) Save(record *domain.ContentRecord) error {
	return r.db.Save(record).Error
}

func (r *contentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&domain.ContentRecord{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("content_id = ?", id).Delete(&domain.VersionSnapshot{}).Error
	})
}

func (r *contentRepository) ListPaged(page, pageSize int) ([]*domain.ContentRecord, int64, error) {
	var records []*domain.ContentRecord
	var total int64

	if err := r.db.Model(&domain.ContentRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error
	return records, total, err
}

func (r *contentRepository) Search(keyword string, page, pageSize int) ([]*domain.ContentRecord, int64, error) {
	var records []*domain.ContentRecord
	var total int64

	like := "%" + keyword + "%"
	q := r.db.Model(&domain.ContentRecord{}).Where("title LIKE ? OR slug LIKE ?", like, like)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := q.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&records).Error
	return records, total, err
}

// IsNotFound reports whether err is the gorm record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package repository

import (
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"gorm.io/gorm"
)

// MediaRepository media library data access
type MediaRepository interface {
	Create(media *domain.Media) error
	FindByID(id string) (*domain.Media, error)
	ListPaged(page, pageSize int) ([]*domain.Media, int64, error)
	Delete(id string) error
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *domain.Media) error {
	return r.db.Create(media).Error
}

func (r *mediaRepository) FindByID(id string) (*domain.Media, error) {
	var media domain.Media
	if err := r.db.Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListPaged(page, pageSize int) ([]*domain.Media, int64, error) {
	var items []*domain.Media
	var total int64

	if err := r.db.Model(&domain.Media{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

func (r *mediaRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Media{}).Error
}

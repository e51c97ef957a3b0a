package repository

import (
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"gorm.io/gorm"
)

// VersionRepository append-only version snapshot access
type VersionRepository interface {
	Create(snapshot *domain.VersionSnapshot) error
	FindByID(id string) (*domain.VersionSnapshot, error)
	FindByContentID(contentID string) ([]*domain.VersionSnapshot, error)
	FindByContentIDAndVersion(contentID string, version int) (*domain.VersionSnapshot, error)
	NextVersion(contentID string) (int, error)
	MaxVersion(contentID string) (int, error)
}

type versionRepository struct {
	db *gorm.DB
}

// NewVersionRepository creates a new VersionRepository
func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) Create(snapshot *domain.VersionSnapshot) error {
	return r.db.Create(snapshot).Error
}

func (r *versionRepository) FindByID(id string) (*domain.VersionSnapshot, error) {
	var snapshot domain.VersionSnapshot
	if err := r.db.Where("id = ?", id).First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *versionRepository) FindByContentID(contentID string) ([]*domain.VersionSnapshot, error) {
	var snapshots []*domain.VersionSnapshot
	err := r.db.Where("content_id = ?", contentID).Order("version DESC").Find(&snapshots).Error
	return snapshots, err
}

func (r *versionRepository) FindByContentIDAndVersion(contentID string, version int) (*domain.VersionSnapshot, error) {
	var snapshot domain.VersionSnapshot
	err := r.db.Where("content_id = ? AND version = ?", contentID, version).First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *versionRepository) NextVersion(contentID string) (int, error) {
	max, err := r.MaxVersion(contentID)
	if err != nil {
		return 1, err
	}
	return max + 1, nil
}

func (r *versionRepository) MaxVersion(contentID string) (int, error) {
	var maxVersion *int
	err := r.db.Model(&domain.VersionSnapshot{}).
		Where("content_id = ?", contentID).
		Select("MAX(version)").
		Scan(&maxVersion).Error
	if err != nil {
		return 0, err
	}
	if maxVersion == nil {
		return 0, nil
	}
	return *maxVersion, nil
}

package repository

import (
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository category data access
type CategoryRepository interface {
	Create(category *domain.Category) error
	FindByID(id string) (*domain.Category, error)
	List() ([]*domain.Category, error)
	Save(category *domain.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *domain.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id string) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List() ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.Order("order_num ASC, created_at ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Save(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Category{}).Error
}

// TagRepository tag data access
type TagRepository interface {
	Create(tag *domain.Tag) error
	List() ([]*domain.Tag, error)
	Delete(id string) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *domain.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) List() ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := r.db.Order("created_at ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Tag{}).Error
}

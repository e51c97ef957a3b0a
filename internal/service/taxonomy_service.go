package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
)

// TaxonomyService manages categories and tags.
type TaxonomyService interface {
	CreateCategory(req *domain.CreateCategoryRequest) (*domain.Category, error)
	ListCategories() ([]*domain.Category, error)
	DeleteCategory(id string) error

	CreateTag(req *domain.CreateTagRequest) (*domain.Tag, error)
	ListTags() ([]*domain.Tag, error)
	DeleteTag(id string) error
}

type taxonomyService struct {
	categories repository.CategoryRepository
	tags       repository.TagRepository
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(categories repository.CategoryRepository, tags repository.TagRepository) TaxonomyService {
	return &taxonomyService{categories: categories, tags: tags}
}

func (s *taxonomyService) CreateCategory(req *domain.CreateCategoryRequest) (*domain.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = domain.Slugify(req.Name.Get(domain.LocaleEN))
	}
	if slug == "" {
		return nil, common.ErrInvalidInput
	}

	now := time.Now()
	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		OrderNum:    req.OrderNum,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *taxonomyService) ListCategories() ([]*domain.Category, error) {
	return s.categories.List()
}

func (s *taxonomyService) DeleteCategory(id string) error {
	if _, err := s.categories.FindByID(id); err != nil {
		return common.ErrNotFound
	}
	return s.categories.Delete(id)
}

func (s *taxonomyService) CreateTag(req *domain.CreateTagRequest) (*domain.Tag, error) {
	slug := req.Slug
	if slug == "" {
		slug = domain.Slugify(req.Name.Get(domain.LocaleEN))
	}
	if slug == "" {
		return nil, common.ErrInvalidInput
	}

	tag := &domain.Tag{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	if err := s.tags.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *taxonomyService) ListTags() ([]*domain.Tag, error) {
	return s.tags.List()
}

func (s *taxonomyService) DeleteTag(id string) error {
	return s.tags.Delete(id)
}

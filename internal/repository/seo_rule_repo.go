package repository

import (
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"gorm.io/gorm"
)

// SEORuleRepository seo_rules data access
type SEORuleRepository interface {
	FindByPageType(pageType domain.ContentType) (*domain.SEORule, error)
	List() ([]*domain.SEORule, error)
	Save(rule *domain.SEORule) error
	Count() (int64, error)
}

type seoRuleRepository struct {
	db *gorm.DB
}

// NewSEORuleRepository creates a new SEORuleRepository
func NewSEORuleRepository(db *gorm.DB) SEORuleRepository {
	return &seoRuleRepository{db: db}
}

func (r *seoRuleRepository) FindByPageType(pageType domain.ContentType) (*domain.SEORule, error) {
	var rule domain.SEORule
	if err := r.db.Where("page_type = ?", pageType).First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *seoRuleRepository) List() ([]*domain.SEORule, error) {
	var rules []*domain.SEORule
	err := r.db.Order("page_type ASC").Find(&rules).Error
	return rules, err
}

func (r *seoRuleRepository) Save(rule *domain.SEORule) error {
	return r.db.Save(rule).Error
}

func (r *seoRuleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.SEORule{}).Count(&count).Error
	return count, err
}

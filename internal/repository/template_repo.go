package repository

import (
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"gorm.io/gorm"
)

// TemplateRepository template data access
type TemplateRepository interface {
	Create(template *domain.Template) error
	FindByID(id string) (*domain.Template, error)
	List() ([]*domain.Template, error)
	Save(template *domain.Template) error
	Delete(id string) error
}

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(template *domain.Template) error {
	return r.db.Create(template).Error
}

func (r *templateRepository) FindByID(id string) (*domain.Template, error) {
	var template domain.Template
	if err := r.db.Where("id = ?", id).First(&template).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) List() ([]*domain.Template, error) {
	var templates []*domain.Template
	err := r.db.Order("created_at DESC").Find(&templates).Error
	return templates, err
}

func (r *templateRepository) Save(template *domain.Template) error {
	return r.db.Save(template).Error
}

func (r *templateRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Template{}).Error
}

// InstanceRepository template instance data access
type InstanceRepository interface {
	Create(instance *domain.TemplateInstance) error
	FindByID(id string) (*domain.TemplateInstance, error)
	FindByTemplateID(templateID string) ([]*domain.TemplateInstance, error)
	Save(instance *domain.TemplateInstance) error
}

type instanceRepository struct {
	db *gorm.DB
}

// NewInstanceRepository creates a new InstanceRepository
func NewInstanceRepository(db *gorm.DB) InstanceRepository {
	return &instanceRepository{db: db}
}

func (r *instanceRepository) Create(instance *domain.TemplateInstance) error {
	return r.db.Create(instance).Error
}

func (r *instanceRepository) FindByID(id string) (*domain.TemplateInstance, error) {
	var instance domain.TemplateInstance
	if err := r.db.Where("id = ?", id).First(&instance).Error; err != nil {
		return nil, err
	}
	return &instance, nil
}

func (r *instanceRepository) FindByTemplateID(templateID string) ([]*domain.TemplateInstance, error) {
	var instances []*domain.TemplateInstance
	err := r.db.Where("template_id = ?", templateID).Order("created_at DESC").Find(&instances).Error
	return instances, err
}

func (r *instanceRepository) Save(instance *domain.TemplateInstance) error {
	return r.db.Save(instance).Error
}

// Package migration creates and seeds the database schema.
package migration

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/seo"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Run auto-migrates every model.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.ContentRecord{},
		&domain.VersionSnapshot{},
		&domain.Template{},
		&domain.TemplateInstance{},
		&domain.Category{},
		&domain.Tag{},
		&domain.Media{},
		&domain.User{},
		&domain.SEORule{},
	)
}

// SeedSEORules inserts the built-in per-pageType SEO rules when the
// table is empty. Existing rows are never overwritten; editors own
// them once seeded.
func SeedSEORules(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.SEORule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	rules := seo.DefaultRules()
	for i := range rules {
		rules[i].ID = uuid.New().String()
		rules[i].UpdatedAt = now
	}
	if err := db.Create(&rules).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(rules)).Msg("seeded default SEO rules")
	return nil
}

// SeedAdminUser bootstraps the first admin account when the users
// table is empty. password must come from the environment; an empty
// password skips seeding.
func SeedAdminUser(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	admin := &domain.User{
		ID:          uuid.New().String(),
		Username:    username,
		Email:       username + "@localhost",
		DisplayName: username,
		Role:        domain.RoleAdmin,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("seeded bootstrap admin user")
	return nil
}

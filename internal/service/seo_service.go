package service

import (
	"context"

	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
	"github.com/hostpicks/hostpicks-backend/internal/seo"
	"github.com/hostpicks/hostpicks-backend/pkg/cache"
)

// SEOService resolves per-pageType rules and runs the SEO generator
// against them.
type SEOService interface {
	Generate(pageType domain.ContentType, vars map[string]any) (*seo.Result, error)
	GenerateSchema(pageType domain.ContentType, vars map[string]any, url string) (seo.Schema, error)
	Validate(pageType domain.ContentType, title, description string) (*seo.Validation, error)
	HeadingSuggestions(pageType domain.ContentType, vars map[string]any) ([]string, error)
	ListRules() ([]*domain.SEORule, error)
	SaveRule(rule *domain.SEORule) error
}

type seoService struct {
	rules         repository.SEORuleRepository
	cache         cache.Service
	canonicalBase string
}

// NewSEOService creates a new SEOService. canonicalBase is the public
// site origin used for canonical URLs, e.g. https://hostpicks.net.
func NewSEOService(rules repository.SEORuleRepository, cacheService cache.Service, canonicalBase string) SEOService {
	return &seoService{rules: rules, cache: cacheService, canonicalBase: canonicalBase}
}

// rule resolves the per-pageType rule record through the cache; every
// generate/validate call hits this path.
func (s *seoService) rule(pageType domain.ContentType) (*domain.SEORule, error) {
	if !pageType.Valid() {
		return nil, common.ErrInvalidInput
	}

	ctx := context.Background()
	key := cache.PrefixSEORules + string(pageType)

	var cached domain.SEORule
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	rule, err := s.rules.FindByPageType(pageType)
	if err != nil {
		return nil, common.ErrNotFound
	}
	_ = s.cache.Set(ctx, key, rule, cache.TTLSEORules)
	return rule, nil
}

func (s *seoService) Generate(pageType domain.ContentType, vars map[string]any) (*seo.Result, error) {
	rule, err := s.rule(pageType)
	if err != nil {
		return nil, err
	}
	return seo.Generate(rule, vars, s.canonicalBase), nil
}

func (s *seoService) GenerateSchema(pageType domain.ContentType, vars map[string]any, url string) (seo.Schema, error) {
	if !pageType.Valid() {
		return nil, common.ErrInvalidInput
	}
	return seo.GenerateSchema(pageType, vars, url), nil
}

func (s *seoService) Validate(pageType domain.ContentType, title, description string) (*seo.Validation, error) {
	rule, err := s.rule(pageType)
	if err != nil {
		return nil, err
	}
	return seo.Validate(rule, title, description), nil
}

func (s *seoService) HeadingSuggestions(pageType domain.ContentType, vars map[string]any) ([]string, error) {
	rule, err := s.rule(pageType)
	if err != nil {
		return nil, err
	}
	return seo.HeadingSuggestions(rule, vars), nil
}

func (s *seoService) ListRules() ([]*domain.SEORule, error) {
	return s.rules.List()
}

func (s *seoService) SaveRule(rule *domain.SEORule) error {
	if !rule.PageType.Valid() {
		return common.ErrInvalidInput
	}
	if err := s.rules.Save(rule); err != nil {
		return err
	}
	_ = s.cache.Delete(context.Background(), cache.PrefixSEORules+string(rule.PageType))
	return nil
}

package service

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
	"github.com/hostpicks/hostpicks-backend/pkg/cache"
)

// variableToken matches {{variableName}} placeholders in template
// section content. Note the SEO generator uses single-brace {key}
// tokens; the two syntaxes are deliberately kept separate.
var variableToken = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// TemplateService renders templates into draft content fields and
// materializes template instances into persisted content records.
type TemplateService interface {
	Create(req *domain.CreateTemplateRequest) (*domain.Template, error)
	Get(id string) (*domain.Template, error)
	List() ([]*domain.Template, error)
	Delete(id string) error

	// Render validates required variables, merges defaults and
	// substitutes placeholders. Pure: performs no writes.
	Render(templateID string, variables map[string]any) (*domain.ContentFields, error)
	// Preview is Render under a read-only name; callers use it when the
	// result will not be persisted.
	Preview(templateID string, variables map[string]any) (*domain.ContentFields, error)

	CreateInstance(req *domain.CreateInstanceRequest) (*domain.TemplateInstance, error)
	ListInstances(templateID string) ([]*domain.TemplateInstance, error)
	// Materialize renders the instance and persists the result as a new
	// draft content record. Guarded against double materialization
	// unless the service was built with AllowRematerialize.
	Materialize(instanceID, author string) (*domain.ContentRecord, error)
}

// TemplateServiceConfig tunes engine behavior.
type TemplateServiceConfig struct {
	// AllowRematerialize restores the legacy behavior where calling
	// Materialize twice on one instance creates two content records.
	AllowRematerialize bool
}

type templateService struct {
	templates repository.TemplateRepository
	instances repository.InstanceRepository
	contents  repository.ContentRepository
	versions  VersionService
	cache     cache.Service
	cfg       TemplateServiceConfig
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(
	templates repository.TemplateRepository,
	instances repository.InstanceRepository,
	contents repository.ContentRepository,
	versions VersionService,
	cacheService cache.Service,
	cfg TemplateServiceConfig,
) TemplateService {
	return &templateService{
		templates: templates,
		instances: instances,
		contents:  contents,
		versions:  versions,
		cache:     cacheService,
		cfg:       cfg,
	}
}

// fetchTemplate reads through the template cache. Templates change
// rarely, so render-heavy workloads mostly hit Redis.
func (s *templateService) fetchTemplate(id string) (*domain.Template, error) {
	ctx := context.Background()
	key := cache.PrefixTemplate + id

	var cached domain.Template
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	template, err := s.templates.FindByID(id)
	if err != nil {
		return nil, common.ErrTemplateNotFound
	}
	_ = s.cache.Set(ctx, key, template, cache.TTLTemplate)
	return template, nil
}

func (s *templateService) Create(req *domain.CreateTemplateRequest) (*domain.Template, error) {
	if !req.Type.Valid() {
		return nil, common.ErrInvalidInput
	}

	now := time.Now()
	template := &domain.Template{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Variables:   req.Variables,
		Structure:   req.Structure,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i := range template.Variables {
		if template.Variables[i].ID == "" {
			template.Variables[i].ID = uuid.New().String()
		}
	}
	for i := range template.Structure.Sections {
		if template.Structure.Sections[i].ID == "" {
			template.Structure.Sections[i].ID = uuid.New().String()
		}
	}

	if err := s.templates.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *templateService) Get(id string) (*domain.Template, error) {
	return s.fetchTemplate(id)
}

func (s *templateService) List() ([]*domain.Template, error) {
	return s.templates.List()
}

func (s *templateService) Delete(id string) error {
	if _, err := s.templates.FindByID(id); err != nil {
		return common.ErrTemplateNotFound
	}
	if err := s.templates.Delete(id); err != nil {
		return err
	}
	_ = s.cache.Delete(context.Background(), cache.PrefixTemplate+id)
	return nil
}

func (s *templateService) Render(templateID string, variables map[string]any) (*domain.ContentFields, error) {
	template, err := s.fetchTemplate(templateID)
	if err != nil {
		return nil, err
	}

	// Required check runs before any substitution.
	var missing []string
	for _, v := range template.Variables {
		if !v.Required {
			continue
		}
		if _, ok := variables[v.Name]; !ok {
			missing = append(missing, v.Name)
		}
	}
	if len(missing) > 0 {
		return nil, common.NewMissingVariablesError(missing)
	}

	merged := mergeVariables(template.Variables, variables)
	return renderFields(template, merged), nil
}

func (s *templateService) Preview(templateID string, variables map[string]any) (*domain.ContentFields, error) {
	return s.Render(templateID, variables)
}

func (s *templateService) CreateInstance(req *domain.CreateInstanceRequest) (*domain.TemplateInstance, error) {
	if _, err := s.templates.FindByID(req.TemplateID); err != nil {
		return nil, common.ErrTemplateNotFound
	}

	now := time.Now()
	instance := &domain.TemplateInstance{
		ID:         uuid.New().String(),
		TemplateID: req.TemplateID,
		Variables:  req.Variables,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.instances.Create(instance); err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *templateService) ListInstances(templateID string) ([]*domain.TemplateInstance, error) {
	if _, err := s.templates.FindByID(templateID); err != nil {
		return nil, common.ErrTemplateNotFound
	}
	return s.instances.FindByTemplateID(templateID)
}

func (s *templateService) Materialize(instanceID, author string) (*domain.ContentRecord, error) {
	instance, err := s.instances.FindByID(instanceID)
	if err != nil {
		return nil, common.ErrInstanceNotFound
	}
	if instance.ContentID != nil && !s.cfg.AllowRematerialize {
		return nil, common.ErrAlreadyMaterialized
	}

	fields, err := s.Render(instance.TemplateID, instance.Variables)
	if err != nil {
		return nil, err
	}

	if author == "" {
		author = "system"
	}

	// A template without a usable title section renders an empty slug;
	// refuse it the same way the manual create path does.
	if fields.Slug == "" {
		return nil, common.ErrInvalidInput
	}

	exists, err := s.contents.ExistsBySlug(fields.Slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrSlugConflict
	}

	now := time.Now()
	record := &domain.ContentRecord{
		ID:            uuid.New().String(),
		Type:          fields.Type,
		Title:         fields.Title,
		Slug:          fields.Slug,
		Status:        domain.StatusDraft,
		SEO:           fields.SEO,
		Content:       fields.Content,
		FeaturedImage: fields.FeaturedImage,
		Gallery:       fields.Gallery,
		Author:        author,
		Locale:        fields.Locale,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.contents.Create(record); err != nil {
		return nil, err
	}

	if _, err := s.versions.Snapshot(record, author, "created from template"); err != nil {
		return nil, err
	}

	instance.ContentID = &record.ID
	instance.UpdatedAt = now
	if err := s.instances.Save(instance); err != nil {
		return nil, err
	}

	return record, nil
}

// mergeVariables unions provided values over declared defaults; provided
// values win. Declared variables without a value and without a default
// are left absent so their tokens pass through verbatim.
func mergeVariables(declared []domain.TemplateVariable, provided map[string]any) map[string]any {
	merged := make(map[string]any, len(declared)+len(provided))
	for _, v := range declared {
		if v.Default != nil {
			merged[v.Name] = v.Default
		}
	}
	for name, value := range provided {
		merged[name] = value
	}
	return merged
}

// substitute replaces {{name}} tokens with merged values. Tokens whose
// name has no value are left verbatim so partially-filled previews show
// the remaining slots.
func substitute(content string, merged map[string]any) string {
	return variableToken.ReplaceAllStringFunc(content, func(token string) string {
		name := token[2 : len(token)-2]
		value, ok := merged[name]
		if !ok {
			return token
		}
		return stringifyValue(value)
	})
}

// substituteContent applies substitution to either shape of section
// content: plain strings once, locale maps independently per locale.
func substituteContent(content domain.SectionContent, merged map[string]any) domain.SectionContent {
	if content.IsLocalized() {
		out := make(domain.LocalizedString, len(content.Localized))
		for locale, text := range content.Localized {
			out[locale] = substitute(text, merged)
		}
		return domain.NewLocalizedContent(out)
	}
	return domain.NewPlainContent(substitute(content.Plain, merged))
}

// stringifyValue converts a variable value to its substitution string.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		// Fallback for unusual JSON shapes (arrays, objects).
		return ""
	}
}

// localizedFrom expands substituted section content into a locale map;
// plain content is duplicated identically into both locale buckets.
func localizedFrom(content domain.SectionContent) domain.LocalizedString {
	out := make(domain.LocalizedString, len(domain.Locales))
	for _, locale := range domain.Locales {
		out[locale] = content.ForLocale(locale)
	}
	return out
}

// renderFields assembles the draft content fields from the template
// structure and the merged variable map.
func renderFields(template *domain.Template, merged map[string]any) *domain.ContentFields {
	fields := &domain.ContentFields{
		Type:    template.Type,
		Content: make(domain.ContentBody, len(domain.Locales)),
		Locale:  domain.LocaleEN,
	}

	bodies := make(map[domain.Locale]*domain.LocalizedBody, len(domain.Locales))
	for _, locale := range domain.Locales {
		bodies[locale] = &domain.LocalizedBody{}
	}

	for _, section := range template.Structure.Sections {
		substituted := substituteContent(section.Content, merged)

		switch section.Type {
		case domain.TplSectionTitle:
			fields.Title = localizedFrom(substituted)
		case domain.TplSectionIntro:
			for _, locale := range domain.Locales {
				bodies[locale].Intro = substituted.ForLocale(locale)
			}
		case domain.TplSectionSEOTitle:
			fields.SEO.Title = localizedFrom(substituted)
		case domain.TplSectionSEODescription:
			fields.SEO.Description = localizedFrom(substituted)
		case domain.TplSectionSEOKeywords:
			fields.SEO.Keywords = localizedFrom(substituted)
		default:
			for _, locale := range domain.Locales {
				var content domain.SectionContent
				if substituted.IsLocalized() {
					// Locale-map sections keep per-locale values.
					content = domain.NewPlainContent(substituted.ForLocale(locale))
				} else {
					// String sections are duplicated identically.
					content = domain.NewPlainContent(substituted.Plain)
				}
				bodies[locale].Sections = append(bodies[locale].Sections, domain.Section{
					ID:      section.ID,
					Type:    section.Type.BodySectionType(),
					Content: content,
					Order:   section.Order,
				})
			}
		}
	}

	for _, locale := range domain.Locales {
		fields.Content[locale] = *bodies[locale]
	}

	// Slug derives from the English title.
	fields.Slug = domain.Slugify(fields.Title[domain.LocaleEN])

	// SEO fields fall back to the plain title when no dedicated section
	// was declared.
	if fields.SEO.Title == nil {
		fields.SEO.Title = fields.Title.Clone()
	}
	if fields.SEO.Description == nil {
		fields.SEO.Description = fields.Title.Clone()
	}
	if fields.SEO.Keywords == nil {
		fields.SEO.Keywords = fields.Title.Clone()
	}

	return fields
}

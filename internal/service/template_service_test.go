package service

import (
	"errors"
	"testing"

	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func reviewTemplate() *domain.Template {
	return &domain.Template{
		ID:   "tpl-1",
		Name: "VPS Review",
		Type: domain.ContentReview,
		Variables: []domain.TemplateVariable{
			{ID: "var-1", Name: "product", Type: domain.VariableText, Required: true},
			{ID: "var-2", Name: "year", Type: domain.VariableNumber, Default: 2025},
			{ID: "var-3", Name: "rating", Type: domain.VariableNumber},
		},
		Structure: domain.TemplateStructure{
			Sections: []domain.TemplateSection{
				{ID: "s-title", Type: domain.TplSectionTitle, Content: domain.NewLocalizedContent(domain.LocalizedString{
					domain.LocaleEN: "{{product}} Review {{year}}",
					domain.LocaleZH: "{{product}} 测评 {{year}}",
				}), Order: 0},
				{ID: "s-intro", Type: domain.TplSectionIntro, Content: domain.NewPlainContent("An honest look at {{product}}."), Order: 1},
				{ID: "s-body", Type: domain.TplSectionText, Content: domain.NewPlainContent("Rated {{rating}} out of 5."), Order: 2},
			},
		},
	}
}

func newTemplateServiceForTest(cfg TemplateServiceConfig) (TemplateService, *mockTemplateRepo, *mockInstanceRepo, *mockContentRepo, *mockVersionService) {
	templates := new(mockTemplateRepo)
	instances := new(mockInstanceRepo)
	contents := new(mockContentRepo)
	versions := new(mockVersionService)
	svc := NewTemplateService(templates, instances, contents, versions, newStubCache(), cfg)
	return svc, templates, instances, contents, versions
}

func TestTemplateService_Render_MissingRequired(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)

	_, err := svc.Render("tpl-1", map[string]any{"year": 2024})

	var missing *common.MissingVariablesError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"product"}, missing.Names)
}

func TestTemplateService_Render_DefaultsAndSubstitution(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)

	fields, err := svc.Render("tpl-1", map[string]any{"product": "Vultr", "rating": 4.5})
	assert.NoError(t, err)

	// Default year merged; localized title substituted per locale.
	assert.Equal(t, "Vultr Review 2025", fields.Title[domain.LocaleEN])
	assert.Equal(t, "Vultr 测评 2025", fields.Title[domain.LocaleZH])

	// Plain intro duplicated into both locales.
	assert.Equal(t, "An honest look at Vultr.", fields.Content[domain.LocaleEN].Intro)
	assert.Equal(t, "An honest look at Vultr.", fields.Content[domain.LocaleZH].Intro)

	// Body section kept with float rendered plainly.
	sections := fields.Content[domain.LocaleEN].Sections
	assert.Len(t, sections, 1)
	assert.Equal(t, "Rated 4.5 out of 5.", sections[0].Content.Plain)
	assert.Equal(t, domain.SectionText, sections[0].Type)

	// Slug comes from the English title.
	assert.Equal(t, "vultr-review-2025", fields.Slug)
}

func TestTemplateService_Render_ProvidedValueWinsOverDefault(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)

	fields, err := svc.Render("tpl-1", map[string]any{"product": "Vultr", "year": 2030, "rating": 5})
	assert.NoError(t, err)
	assert.Equal(t, "Vultr Review 2030", fields.Title[domain.LocaleEN])
}

func TestTemplateService_Render_UnknownTokenPassesThrough(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)

	// rating is declared but optional with no default; its token stays.
	fields, err := svc.Render("tpl-1", map[string]any{"product": "Vultr"})
	assert.NoError(t, err)
	assert.Equal(t, "Rated {{rating}} out of 5.", fields.Content[domain.LocaleEN].Sections[0].Content.Plain)
}

func TestTemplateService_Render_SEOFallsBackToTitle(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)

	fields, err := svc.Render("tpl-1", map[string]any{"product": "Vultr"})
	assert.NoError(t, err)
	assert.Equal(t, fields.Title[domain.LocaleEN], fields.SEO.Title[domain.LocaleEN])
	assert.Equal(t, fields.Title[domain.LocaleZH], fields.SEO.Description[domain.LocaleZH])
}

func TestTemplateService_Render_DedicatedSEOSections(t *testing.T) {
	template := reviewTemplate()
	template.Structure.Sections = append(template.Structure.Sections, domain.TemplateSection{
		ID:      "s-seo",
		Type:    domain.TplSectionSEOTitle,
		Content: domain.NewPlainContent("{{product}} deals {{year}}"),
		Order:   3,
	})

	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(template, nil)

	fields, err := svc.Render("tpl-1", map[string]any{"product": "Vultr"})
	assert.NoError(t, err)
	assert.Equal(t, "Vultr deals 2025", fields.SEO.Title[domain.LocaleEN])
	// Description still falls back to the title.
	assert.Equal(t, "Vultr Review 2025", fields.SEO.Description[domain.LocaleEN])
}

func TestTemplateService_Render_TemplateNotFound(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "missing").Return(nil, errors.New("record not found"))

	_, err := svc.Render("missing", nil)
	assert.ErrorIs(t, err, common.ErrTemplateNotFound)
}

func TestTemplateService_Materialize(t *testing.T) {
	svc, templates, instances, contents, versions := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)
	instances.On("FindByID", "inst-1").Return(&domain.TemplateInstance{
		ID:         "inst-1",
		TemplateID: "tpl-1",
		Variables:  map[string]any{"product": "Vultr", "rating": 4},
	}, nil)
	contents.On("ExistsBySlug", "vultr-review-2025", "").Return(false, nil)
	contents.On("Create", mock.AnythingOfType("*domain.ContentRecord")).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "created from template").
		Return(&domain.VersionSnapshot{Version: 1}, nil)
	instances.On("Save", mock.AnythingOfType("*domain.TemplateInstance")).Return(nil)

	record, err := svc.Materialize("inst-1", "editor")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, record.Status)
	assert.Equal(t, "vultr-review-2025", record.Slug)
	assert.Equal(t, "editor", record.Author)
	assert.NotEmpty(t, record.ID)

	// The instance now points at the created record.
	instances.AssertCalled(t, "Save", mock.MatchedBy(func(inst *domain.TemplateInstance) bool {
		return inst.ContentID != nil && *inst.ContentID == record.ID
	}))
	versions.AssertExpectations(t)
}

func TestTemplateService_Materialize_AlreadyMaterialized(t *testing.T) {
	contentID := "c1"
	svc, _, instances, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	instances.On("FindByID", "inst-1").Return(&domain.TemplateInstance{
		ID:         "inst-1",
		TemplateID: "tpl-1",
		ContentID:  &contentID,
	}, nil)

	_, err := svc.Materialize("inst-1", "editor")
	assert.ErrorIs(t, err, common.ErrAlreadyMaterialized)
}

func TestTemplateService_Materialize_RematerializeAllowed(t *testing.T) {
	contentID := "c1"
	svc, templates, instances, contents, versions := newTemplateServiceForTest(TemplateServiceConfig{AllowRematerialize: true})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)
	instances.On("FindByID", "inst-1").Return(&domain.TemplateInstance{
		ID:         "inst-1",
		TemplateID: "tpl-1",
		ContentID:  &contentID,
		Variables:  map[string]any{"product": "Vultr"},
	}, nil)
	contents.On("ExistsBySlug", "vultr-review-2025", "").Return(false, nil)
	contents.On("Create", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "created from template").
		Return(&domain.VersionSnapshot{Version: 1}, nil)
	instances.On("Save", mock.Anything).Return(nil)

	record, err := svc.Materialize("inst-1", "editor")
	assert.NoError(t, err)
	assert.NotEqual(t, contentID, record.ID)
}

func TestTemplateService_Materialize_SlugConflict(t *testing.T) {
	svc, templates, instances, contents, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)
	instances.On("FindByID", "inst-1").Return(&domain.TemplateInstance{
		ID:         "inst-1",
		TemplateID: "tpl-1",
		Variables:  map[string]any{"product": "Vultr"},
	}, nil)
	contents.On("ExistsBySlug", "vultr-review-2025", "").Return(true, nil)

	_, err := svc.Materialize("inst-1", "editor")
	assert.ErrorIs(t, err, common.ErrSlugConflict)
}

func TestTemplateService_Materialize_DefaultAuthor(t *testing.T) {
	svc, templates, instances, contents, versions := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)
	instances.On("FindByID", "inst-1").Return(&domain.TemplateInstance{
		ID:         "inst-1",
		TemplateID: "tpl-1",
		Variables:  map[string]any{"product": "Vultr"},
	}, nil)
	contents.On("ExistsBySlug", "vultr-review-2025", "").Return(false, nil)
	contents.On("Create", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "system", "created from template").
		Return(&domain.VersionSnapshot{Version: 1}, nil)
	instances.On("Save", mock.Anything).Return(nil)

	record, err := svc.Materialize("inst-1", "")
	assert.NoError(t, err)
	assert.Equal(t, "system", record.Author)
}

func TestTemplateService_Materialize_EmptyTitleRejected(t *testing.T) {
	template := reviewTemplate()
	template.Variables = nil
	template.Structure.Sections = []domain.TemplateSection{
		{ID: "s-title", Type: domain.TplSectionTitle, Content: domain.NewPlainContent("!!!")},
	}

	svc, templates, instances, contents, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(template, nil)
	instances.On("FindByID", "inst-1").Return(&domain.TemplateInstance{
		ID:         "inst-1",
		TemplateID: "tpl-1",
	}, nil)

	// The title renders to nothing but punctuation, so no slug can be
	// derived and no record may be persisted.
	_, err := svc.Materialize("inst-1", "editor")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	contents.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTemplateService_GetReadsThroughCache(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil).Once()

	first, err := svc.Get("tpl-1")
	assert.NoError(t, err)

	// Second read is served from the cache; the repository expectation
	// above allows a single call only.
	second, err := svc.Get("tpl-1")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)
	templates.AssertExpectations(t)
}

func TestTemplateService_DeleteEvictsCache(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil).Times(2)
	templates.On("Delete", "tpl-1").Return(nil)

	_, err := svc.Get("tpl-1")
	assert.NoError(t, err)
	assert.NoError(t, svc.Delete("tpl-1"))

	// After eviction the next read goes back to the repository.
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil).Once()
	_, err = svc.Get("tpl-1")
	assert.NoError(t, err)
	templates.AssertExpectations(t)
}

func TestTemplateService_ListInstances(t *testing.T) {
	svc, templates, instances, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "tpl-1").Return(reviewTemplate(), nil)
	instances.On("FindByTemplateID", "tpl-1").Return([]*domain.TemplateInstance{
		{ID: "inst-1", TemplateID: "tpl-1"},
		{ID: "inst-2", TemplateID: "tpl-1"},
	}, nil)

	list, err := svc.ListInstances("tpl-1")
	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestTemplateService_ListInstances_TemplateMissing(t *testing.T) {
	svc, templates, instances, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("FindByID", "missing").Return(nil, errors.New("record not found"))

	_, err := svc.ListInstances("missing")
	assert.ErrorIs(t, err, common.ErrTemplateNotFound)
	instances.AssertNotCalled(t, "FindByTemplateID", mock.Anything)
}

func TestTemplateService_CreateAssignsIDs(t *testing.T) {
	svc, templates, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})
	templates.On("Create", mock.AnythingOfType("*domain.Template")).Return(nil)

	template, err := svc.Create(&domain.CreateTemplateRequest{
		Name: "Review",
		Type: domain.ContentReview,
		Variables: []domain.TemplateVariable{
			{Name: "product", Type: domain.VariableText},
		},
		Structure: domain.TemplateStructure{
			Sections: []domain.TemplateSection{
				{Type: domain.TplSectionTitle, Content: domain.NewPlainContent("{{product}}")},
			},
		},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, template.ID)
	assert.NotEmpty(t, template.Variables[0].ID)
	assert.NotEmpty(t, template.Structure.Sections[0].ID)
}

func TestTemplateService_CreateRejectsBadType(t *testing.T) {
	svc, _, _, _, _ := newTemplateServiceForTest(TemplateServiceConfig{})

	_, err := svc.Create(&domain.CreateTemplateRequest{Name: "X", Type: "podcast"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockIndexer struct {
	mock.Mock
}

func (m *mockIndexer) Index(ctx context.Context, record *domain.ContentRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockIndexer) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockIndexer) Search(ctx context.Context, keyword string, page, pageSize int) ([]string, int64, error) {
	args := m.Called(ctx, keyword, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]string), args.Get(1).(int64), args.Error(2)
}

func (m *mockIndexer) IsAvailable() bool {
	return m.Called().Bool(0)
}

func newContentServiceForTest() (ContentService, *mockContentRepo, *mockVersionService, *stubCache) {
	contents := new(mockContentRepo)
	versions := new(mockVersionService)
	cacheStub := newStubCache()
	svc := NewContentService(contents, versions, cacheStub, nil)
	return svc, contents, versions, cacheStub
}

func TestContentService_Create(t *testing.T) {
	svc, contents, versions, cacheStub := newContentServiceForTest()
	contents.On("ExistsBySlug", "vultr-review", "").Return(false, nil)
	contents.On("Create", mock.AnythingOfType("*domain.ContentRecord")).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "created").
		Return(&domain.VersionSnapshot{Version: 1}, nil)

	record, err := svc.Create(&domain.CreateContentRequest{
		Type:  domain.ContentReview,
		Title: domain.LocalizedString{domain.LocaleEN: "Vultr Review"},
	}, "editor")
	assert.NoError(t, err)

	// Slug derived from the English title, draft status and locale default.
	assert.Equal(t, "vultr-review", record.Slug)
	assert.Equal(t, domain.StatusDraft, record.Status)
	assert.Equal(t, domain.LocaleEN, record.Locale)
	assert.Nil(t, record.PublishedAt)

	versions.AssertExpectations(t)
	assert.Equal(t, 1, cacheStub.invalidations)
}

func TestContentService_Create_PublishedStampsTimestamp(t *testing.T) {
	svc, contents, versions, _ := newContentServiceForTest()
	contents.On("ExistsBySlug", "vultr-review", "").Return(false, nil)
	contents.On("Create", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "created").
		Return(&domain.VersionSnapshot{Version: 1}, nil)

	record, err := svc.Create(&domain.CreateContentRequest{
		Type:   domain.ContentReview,
		Title:  domain.LocalizedString{domain.LocaleEN: "Vultr Review"},
		Status: domain.StatusPublished,
	}, "editor")
	assert.NoError(t, err)
	assert.NotNil(t, record.PublishedAt)
}

func TestContentService_Create_SlugConflict(t *testing.T) {
	svc, contents, _, _ := newContentServiceForTest()
	contents.On("ExistsBySlug", "taken", "").Return(true, nil)

	_, err := svc.Create(&domain.CreateContentRequest{
		Type:  domain.ContentReview,
		Title: domain.LocalizedString{domain.LocaleEN: "irrelevant"},
		Slug:  "taken",
	}, "editor")
	assert.ErrorIs(t, err, common.ErrSlugConflict)
	contents.AssertNotCalled(t, "Create", mock.Anything)
}

func TestContentService_Create_RejectsInvalidType(t *testing.T) {
	svc, _, _, _ := newContentServiceForTest()

	_, err := svc.Create(&domain.CreateContentRequest{Type: "podcast"}, "editor")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestContentService_Update_PartialMergeAndSnapshot(t *testing.T) {
	svc, contents, versions, _ := newContentServiceForTest()

	existing := liveRecord()
	contents.On("FindByID", "c1").Return(existing, nil)
	contents.On("Save", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "fixed a typo").
		Return(&domain.VersionSnapshot{Version: 2}, nil)

	record, err := svc.Update("c1", &domain.UpdateContentRequest{
		Title:   domain.LocalizedString{domain.LocaleEN: "New Title"},
		Comment: "fixed a typo",
	}, "editor")
	assert.NoError(t, err)

	// Title changed; untouched fields survive.
	assert.Equal(t, "New Title", record.Title[domain.LocaleEN])
	assert.Equal(t, "current-title", record.Slug)
	assert.Equal(t, domain.StatusPublished, record.Status)

	versions.AssertExpectations(t)
}

func TestContentService_Update_SlugConflictExcludesSelf(t *testing.T) {
	svc, contents, versions, _ := newContentServiceForTest()

	contents.On("FindByID", "c1").Return(liveRecord(), nil)
	contents.On("ExistsBySlug", "new-slug", "c1").Return(false, nil)
	contents.On("Save", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "updated").
		Return(&domain.VersionSnapshot{Version: 2}, nil)

	newSlug := "new-slug"
	record, err := svc.Update("c1", &domain.UpdateContentRequest{Slug: &newSlug}, "editor")
	assert.NoError(t, err)
	assert.Equal(t, "new-slug", record.Slug)
}

func TestContentService_Publish_StampsPublishedAtOnce(t *testing.T) {
	svc, contents, versions, _ := newContentServiceForTest()

	existing := liveRecord()
	existing.Status = domain.StatusDraft
	existing.PublishedAt = nil
	contents.On("FindByID", "c1").Return(existing, nil)
	contents.On("Save", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "published").
		Return(&domain.VersionSnapshot{Version: 2}, nil)

	record, err := svc.Publish("c1", "editor")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, record.Status)
	assert.NotNil(t, record.PublishedAt)

	// Republishing keeps the original timestamp.
	first := *record.PublishedAt
	record2, err := svc.Publish("c1", "editor")
	assert.NoError(t, err)
	assert.Equal(t, first, *record2.PublishedAt)
}

func TestContentService_BatchPublish_PartialFailure(t *testing.T) {
	svc, contents, versions, _ := newContentServiceForTest()

	ok1 := liveRecord()
	ok1.ID = "c1"
	ok2 := liveRecord()
	ok2.ID = "c3"
	contents.On("FindByID", "c1").Return(ok1, nil)
	contents.On("FindByID", "c2").Return(nil, errors.New("record not found"))
	contents.On("FindByID", "c3").Return(ok2, nil)
	contents.On("Save", mock.Anything).Return(nil)
	versions.On("Snapshot", mock.Anything, "editor", "published").
		Return(&domain.VersionSnapshot{Version: 2}, nil)

	result := svc.BatchPublish([]string{"c1", "c2", "c3"}, "editor")

	sort.Strings(result.Succeeded)
	assert.Equal(t, []string{"c1", "c3"}, result.Succeeded)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, common.ErrContentNotFound.Error(), result.Failed["c2"])
}

func TestContentService_List_ClampsPaging(t *testing.T) {
	svc, contents, _, _ := newContentServiceForTest()
	contents.On("ListPaged", 1, 20).Return([]*domain.ContentRecord{}, int64(0), nil)
	contents.On("ListPaged", 1, 100).Return([]*domain.ContentRecord{}, int64(0), nil)

	result, err := svc.List(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.PageSize)

	result, err = svc.List(context.Background(), 1, 500)
	assert.NoError(t, err)
	assert.Equal(t, 100, result.PageSize)
}

func TestContentService_Delete(t *testing.T) {
	svc, contents, _, cacheStub := newContentServiceForTest()
	contents.On("Delete", "c1").Return(nil)

	assert.NoError(t, svc.Delete("c1"))
	assert.Equal(t, 1, cacheStub.invalidations)
}

func TestContentService_Search_IndexerPath(t *testing.T) {
	contents := new(mockContentRepo)
	versions := new(mockVersionService)
	indexer := new(mockIndexer)
	svc := NewContentService(contents, versions, newStubCache(), indexer)

	indexer.On("IsAvailable").Return(true)
	indexer.On("Search", mock.Anything, "vultr", 1, 20).
		Return([]string{"c1", "gone"}, int64(2), nil)
	contents.On("FindByID", "c1").Return(liveRecord(), nil)
	// Rows deleted from SQL but still in the index are skipped.
	contents.On("FindByID", "gone").Return(nil, errors.New("record not found"))

	result, err := svc.Search(context.Background(), "vultr", 1, 20)
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(2), result.Total)
	contents.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentService_Search_FallsBackToSQL(t *testing.T) {
	contents := new(mockContentRepo)
	versions := new(mockVersionService)
	indexer := new(mockIndexer)
	svc := NewContentService(contents, versions, newStubCache(), indexer)

	indexer.On("IsAvailable").Return(false)
	contents.On("Search", "vultr", 1, 20).
		Return([]*domain.ContentRecord{liveRecord()}, int64(1), nil)

	result, err := svc.Search(context.Background(), "vultr", 1, 20)
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestContentService_Get_NotFound(t *testing.T) {
	svc, contents, _, _ := newContentServiceForTest()
	contents.On("FindByID", "missing").Return(nil, errors.New("record not found"))

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, common.ErrContentNotFound)
}

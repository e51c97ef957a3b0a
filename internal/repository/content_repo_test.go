package repository

import (
	"testing"
	"time"

	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.ContentRecord{}, &domain.VersionSnapshot{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testRecord(id, slug string) *domain.ContentRecord {
	now := time.Now()
	return &domain.ContentRecord{
		ID:     id,
		Type:   domain.ContentReview,
		Title:  domain.LocalizedString{domain.LocaleEN: "Title " + id, domain.LocaleZH: "标题"},
		Slug:   slug,
		Status: domain.StatusDraft,
		Content: domain.ContentBody{
			domain.LocaleEN: {Intro: "intro"},
		},
		Author:    "tester",
		Locale:    domain.LocaleEN,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContentRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	record := testRecord("c1", "first-post")
	assert.NoError(t, repo.Create(record))

	byID, err := repo.FindByID("c1")
	assert.NoError(t, err)
	assert.Equal(t, "first-post", byID.Slug)
	assert.Equal(t, "Title c1", byID.Title[domain.LocaleEN])
	assert.Equal(t, "标题", byID.Title[domain.LocaleZH])

	bySlug, err := repo.FindBySlug("first-post")
	assert.NoError(t, err)
	assert.Equal(t, "c1", bySlug.ID)

	_, err = repo.FindByID("missing")
	assert.True(t, IsNotFound(err))
}

func TestContentRepository_ExistsBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	assert.NoError(t, repo.Create(testRecord("c1", "taken")))

	exists, err := repo.ExistsBySlug("taken", "")
	assert.NoError(t, err)
	assert.True(t, exists)

	// A record does not conflict with its own slug.
	exists, err = repo.ExistsBySlug("taken", "c1")
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsBySlug("free", "")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestContentRepository_DeleteCascadesVersions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	record := testRecord("c1", "doomed")
	assert.NoError(t, repo.Create(record))
	assert.NoError(t, db.Create(&domain.VersionSnapshot{
		ID: "v1", ContentID: "c1", Version: 1, Record: *record, CreatedAt: time.Now(),
	}).Error)
	assert.NoError(t, db.Create(&domain.VersionSnapshot{
		ID: "v2", ContentID: "c1", Version: 2, Record: *record, CreatedAt: time.Now(),
	}).Error)

	assert.NoError(t, repo.Delete("c1"))

	_, err := repo.FindByID("c1")
	assert.True(t, IsNotFound(err))

	var count int64
	db.Model(&domain.VersionSnapshot{}).Where("content_id = ?", "c1").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestContentRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	err := repo.Delete("missing")
	assert.True(t, IsNotFound(err))
}

func TestContentRepository_ListPaged(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	base := time.Now()
	for i, id := range []string{"c1", "c2", "c3"} {
		record := testRecord(id, "slug-"+id)
		record.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		assert.NoError(t, repo.Create(record))
	}

	records, total, err := repo.ListPaged(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, records, 2)
	// Newest first.
	assert.Equal(t, "c3", records[0].ID)
	assert.Equal(t, "c2", records[1].ID)

	records, total, err = repo.ListPaged(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].ID)
}

func TestContentRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)

	vultr := testRecord("c1", "vultr-review")
	vultr.Title = domain.LocalizedString{domain.LocaleEN: "Vultr Review"}
	assert.NoError(t, repo.Create(vultr))
	assert.NoError(t, repo.Create(testRecord("c2", "other-post")))

	records, total, err := repo.Search("vultr", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].ID)
}

package repository

import (
	"testing"
	"time"

	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestVersionRepository_NextVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVersionRepository(db)

	// Empty history starts at 1.
	next, err := repo.NextVersion("c1")
	assert.NoError(t, err)
	assert.Equal(t, 1, next)

	record := testRecord("c1", "versioned")
	for v := 1; v <= 3; v++ {
		assert.NoError(t, repo.Create(&domain.VersionSnapshot{
			ID:        "v" + string(rune('0'+v)),
			ContentID: "c1",
			Version:   v,
			Record:    *record,
			CreatedAt: time.Now(),
		}))
	}

	next, err = repo.NextVersion("c1")
	assert.NoError(t, err)
	assert.Equal(t, 4, next)

	// Other content IDs keep independent counters.
	next, err = repo.NextVersion("c2")
	assert.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestVersionRepository_FindByContentID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVersionRepository(db)

	record := testRecord("c1", "listed")
	for v := 1; v <= 3; v++ {
		assert.NoError(t, repo.Create(&domain.VersionSnapshot{
			ID:        "v" + string(rune('0'+v)),
			ContentID: "c1",
			Version:   v,
			Record:    *record,
			UpdatedBy: "editor",
			CreatedAt: time.Now(),
		}))
	}

	snapshots, err := repo.FindByContentID("c1")
	assert.NoError(t, err)
	assert.Len(t, snapshots, 3)
	// Newest version first.
	assert.Equal(t, 3, snapshots[0].Version)
	assert.Equal(t, 1, snapshots[2].Version)

	snapshot, err := repo.FindByContentIDAndVersion("c1", 2)
	assert.NoError(t, err)
	assert.Equal(t, "v2", snapshot.ID)
}

func TestVersionRepository_UniquePerContentVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVersionRepository(db)

	record := testRecord("c1", "unique")
	assert.NoError(t, repo.Create(&domain.VersionSnapshot{
		ID: "v1", ContentID: "c1", Version: 1, Record: *record, CreatedAt: time.Now(),
	}))
	// Same (content_id, version) pair is rejected.
	assert.Error(t, repo.Create(&domain.VersionSnapshot{
		ID: "v1b", ContentID: "c1", Version: 1, Record: *record, CreatedAt: time.Now(),
	}))
}

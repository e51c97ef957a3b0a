package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
)

// VersionService maintains the append-only snapshot history of content
// records and performs non-destructive rollback.
type VersionService interface {
	// Snapshot appends a full copy of the record as the next version.
	Snapshot(record *domain.ContentRecord, updatedBy, comment string) (*domain.VersionSnapshot, error)
	List(contentID string) ([]domain.VersionListItem, error)
	Get(versionID string) (*domain.VersionSnapshot, error)
	// Rollback restores a past version's fields onto the live record
	// and appends the restored state as a new highest version. History
	// is never rewritten.
	Rollback(contentID, versionID, updatedBy string) (*domain.ContentRecord, error)
	// RollbackToVersion is Rollback addressed by version number instead
	// of snapshot id.
	RollbackToVersion(contentID string, version int, updatedBy string) (*domain.ContentRecord, error)
	// Diff renders a word-level comparison of two versions' rendered
	// text for one locale. Display aid only.
	Diff(contentID, fromVersionID, toVersionID string, locale domain.Locale) (string, error)
}

type versionService struct {
	versions repository.VersionRepository
	contents repository.ContentRepository
}

// NewVersionService creates a new VersionService
func NewVersionService(versions repository.VersionRepository, contents repository.ContentRepository) VersionService {
	return &versionService{versions: versions, contents: contents}
}

func (s *versionService) Snapshot(record *domain.ContentRecord, updatedBy, comment string) (*domain.VersionSnapshot, error) {
	version, err := s.versions.NextVersion(record.ID)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.VersionSnapshot{
		ID:        uuid.New().String(),
		ContentID: record.ID,
		Version:   version,
		Record:    *record,
		UpdatedBy: updatedBy,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	// Deep-copy the mutable parts so later edits to the live record
	// cannot reach into the stored snapshot.
	snapshot.Record.Title = record.Title.Clone()
	snapshot.Record.SEO = record.SEO.Clone()
	snapshot.Record.Content = record.Content.Clone()
	if record.Gallery != nil {
		snapshot.Record.Gallery = append([]string(nil), record.Gallery...)
	}

	if err := s.versions.Create(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *versionService) List(contentID string) ([]domain.VersionListItem, error) {
	snapshots, err := s.versions.FindByContentID(contentID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.VersionListItem, len(snapshots))
	for i, snap := range snapshots {
		items[i] = snap.ToListItem()
	}
	return items, nil
}

func (s *versionService) Get(versionID string) (*domain.VersionSnapshot, error) {
	snapshot, err := s.versions.FindByID(versionID)
	if err != nil {
		return nil, common.ErrVersionNotFound
	}
	return snapshot, nil
}

func (s *versionService) Rollback(contentID, versionID, updatedBy string) (*domain.ContentRecord, error) {
	snapshot, err := s.versions.FindByID(versionID)
	if err != nil || snapshot.ContentID != contentID {
		return nil, common.ErrVersionNotFound
	}
	return s.restore(snapshot, updatedBy)
}

func (s *versionService) RollbackToVersion(contentID string, version int, updatedBy string) (*domain.ContentRecord, error) {
	snapshot, err := s.versions.FindByContentIDAndVersion(contentID, version)
	if err != nil {
		return nil, common.ErrVersionNotFound
	}
	return s.restore(snapshot, updatedBy)
}

func (s *versionService) restore(snapshot *domain.VersionSnapshot, updatedBy string) (*domain.ContentRecord, error) {
	live, err := s.contents.FindByID(snapshot.ContentID)
	if err != nil {
		return nil, common.ErrContentNotFound
	}

	// Restore the mutable fields; identity and creation time stay.
	restored := snapshot.Record
	live.Title = restored.Title.Clone()
	live.Slug = restored.Slug
	live.Status = restored.Status
	live.ScheduledPublishAt = restored.ScheduledPublishAt
	live.SEO = restored.SEO.Clone()
	live.Content = restored.Content.Clone()
	live.FeaturedImage = restored.FeaturedImage
	live.Gallery = restored.Gallery
	live.Author = restored.Author
	live.Locale = restored.Locale
	live.PublishedAt = restored.PublishedAt
	live.UpdatedAt = time.Now()

	if err := s.contents.Save(live); err != nil {
		return nil, err
	}

	comment := fmt.Sprintf("rollback to version %d", snapshot.Version)
	if _, err := s.Snapshot(live, updatedBy, comment); err != nil {
		return nil, err
	}

	return live, nil
}

func (s *versionService) Diff(contentID, fromVersionID, toVersionID string, locale domain.Locale) (string, error) {
	from, err := s.versions.FindByID(fromVersionID)
	if err != nil || from.ContentID != contentID {
		return "", common.ErrVersionNotFound
	}
	to, err := s.versions.FindByID(toVersionID)
	if err != nil || to.ContentID != contentID {
		return "", common.ErrVersionNotFound
	}
	return WordDiff(renderText(&from.Record, locale), renderText(&to.Record, locale)), nil
}

// renderText flattens a record's text for one locale into a single
// string for diffing.
func renderText(record *domain.ContentRecord, locale domain.Locale) string {
	out := record.Title.Get(locale)
	body, ok := record.Content[locale]
	if !ok {
		return out
	}
	if body.Intro != "" {
		out += "\n" + body.Intro
	}
	for _, section := range body.Sections {
		out += "\n" + section.Content.ForLocale(locale)
	}
	return out
}

package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
	"github.com/hostpicks/hostpicks-backend/pkg/cache"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ContentIndexer mirrors content records into a search index. A nil or
// unavailable indexer degrades search to SQL LIKE.
type ContentIndexer interface {
	Index(ctx context.Context, record *domain.ContentRecord) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, keyword string, page, pageSize int) ([]string, int64, error)
	IsAvailable() bool
}

// ContentListResult is one page of the admin content list.
type ContentListResult struct {
	Items    []*domain.ContentRecord `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
}

// BatchPublishResult reports the per-item outcome of a batch publish.
// The operation is a fan-out, not a transaction: failures do not roll
// back the items that succeeded.
type BatchPublishResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

// ContentService manages the lifecycle of content records: CRUD, status
// transitions and search. Every mutation snapshots the record into the
// version history.
type ContentService interface {
	Create(req *domain.CreateContentRequest, author string) (*domain.ContentRecord, error)
	Get(id string) (*domain.ContentRecord, error)
	GetBySlug(slug string) (*domain.ContentRecord, error)
	Update(id string, req *domain.UpdateContentRequest, updatedBy string) (*domain.ContentRecord, error)
	Delete(id string) error
	List(ctx context.Context, page, pageSize int) (*ContentListResult, error)
	Publish(id, updatedBy string) (*domain.ContentRecord, error)
	BatchPublish(ids []string, updatedBy string) *BatchPublishResult
	Search(ctx context.Context, keyword string, page, pageSize int) (*ContentListResult, error)
}

type contentService struct {
	contents repository.ContentRepository
	versions VersionService
	cache    cache.Service
	indexer  ContentIndexer
}

// NewContentService creates a new ContentService. indexer may be nil.
func NewContentService(
	contents repository.ContentRepository,
	versions VersionService,
	cacheService cache.Service,
	indexer ContentIndexer,
) ContentService {
	return &contentService{
		contents: contents,
		versions: versions,
		cache:    cacheService,
		indexer:  indexer,
	}
}

func (s *contentService) Create(req *domain.CreateContentRequest, author string) (*domain.ContentRecord, error) {
	if !req.Type.Valid() {
		return nil, common.ErrInvalidInput
	}

	slug := req.Slug
	if slug == "" {
		slug = domain.Slugify(req.Title.Get(domain.LocaleEN))
	}
	if slug == "" {
		return nil, common.ErrInvalidInput
	}

	exists, err := s.contents.ExistsBySlug(slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrSlugConflict
	}

	status := req.Status
	if status == "" {
		status = domain.StatusDraft
	}
	locale := req.Locale
	if locale == "" {
		locale = domain.LocaleEN
	}

	now := time.Now()
	record := &domain.ContentRecord{
		ID:                 uuid.New().String(),
		Type:               req.Type,
		Title:              req.Title,
		Slug:               slug,
		Status:             status,
		ScheduledPublishAt: req.ScheduledPublishAt,
		SEO:                req.SEO,
		Content:            req.Content,
		FeaturedImage:      req.FeaturedImage,
		Gallery:            req.Gallery,
		Author:             author,
		Locale:             locale,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if record.Status == domain.StatusPublished {
		record.PublishedAt = &now
	}

	if err := s.contents.Create(record); err != nil {
		return nil, err
	}

	if _, err := s.versions.Snapshot(record, author, "created"); err != nil {
		return nil, err
	}

	s.afterMutation(record)
	return record, nil
}

func (s *contentService) Get(id string) (*domain.ContentRecord, error) {
	record, err := s.contents.FindByID(id)
	if err != nil {
		return nil, common.ErrContentNotFound
	}
	return record, nil
}

func (s *contentService) GetBySlug(slug string) (*domain.ContentRecord, error) {
	record, err := s.contents.FindBySlug(slug)
	if err != nil {
		return nil, common.ErrContentNotFound
	}
	return record, nil
}

// Update applies a partial update: only fields present in the request
// change. Concurrency is last-write-wins; the version history is the
// recovery path when two editors collide.
func (s *contentService) Update(id string, req *domain.UpdateContentRequest, updatedBy string) (*domain.ContentRecord, error) {
	record, err := s.contents.FindByID(id)
	if err != nil {
		return nil, common.ErrContentNotFound
	}

	if req.Slug != nil && *req.Slug != record.Slug {
		exists, err := s.contents.ExistsBySlug(*req.Slug, record.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.ErrSlugConflict
		}
		record.Slug = *req.Slug
	}

	if req.Title != nil {
		record.Title = req.Title
	}
	if req.Status != nil {
		s.applyStatus(record, *req.Status)
	}
	if req.ScheduledPublishAt != nil {
		record.ScheduledPublishAt = req.ScheduledPublishAt
	}
	if req.SEO != nil {
		record.SEO = *req.SEO
	}
	if req.Content != nil {
		record.Content = req.Content
	}
	if req.FeaturedImage != nil {
		record.FeaturedImage = *req.FeaturedImage
	}
	if req.Gallery != nil {
		record.Gallery = *req.Gallery
	}
	if req.Locale != nil {
		record.Locale = *req.Locale
	}
	record.UpdatedAt = time.Now()

	if err := s.contents.Save(record); err != nil {
		return nil, err
	}

	comment := req.Comment
	if comment == "" {
		comment = "updated"
	}
	if _, err := s.versions.Snapshot(record, updatedBy, comment); err != nil {
		return nil, err
	}

	s.afterMutation(record)
	return record, nil
}

func (s *contentService) Delete(id string) error {
	if err := s.contents.Delete(id); err != nil {
		if repository.IsNotFound(err) {
			return common.ErrContentNotFound
		}
		return err
	}

	ctx := context.Background()
	if err := s.cache.InvalidateContentLists(ctx); err != nil {
		log.Warn().Err(err).Msg("content list cache invalidation failed")
	}
	if s.indexer != nil && s.indexer.IsAvailable() {
		if err := s.indexer.Remove(ctx, id); err != nil {
			log.Warn().Err(err).Str("content_id", id).Msg("search index removal failed")
		}
	}
	return nil
}

// List returns one page of content ordered newest first. Pages are
// cached for a short window; a stale list after a write is acceptable.
func (s *contentService) List(ctx context.Context, page, pageSize int) (*ContentListResult, error) {
	page, pageSize = clampPage(page, pageSize)

	if cached, err := s.cache.GetContentList(ctx, page, pageSize); err == nil {
		var result ContentListResult
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	records, total, err := s.contents.ListPaged(page, pageSize)
	if err != nil {
		return nil, err
	}

	result := &ContentListResult{
		Items:    records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	if err := s.cache.SetContentList(ctx, page, pageSize, result); err != nil {
		log.Warn().Err(err).Msg("content list cache write failed")
	}
	return result, nil
}

func (s *contentService) Publish(id, updatedBy string) (*domain.ContentRecord, error) {
	record, err := s.contents.FindByID(id)
	if err != nil {
		return nil, common.ErrContentNotFound
	}

	s.applyStatus(record, domain.StatusPublished)
	record.UpdatedAt = time.Now()

	if err := s.contents.Save(record); err != nil {
		return nil, err
	}
	if _, err := s.versions.Snapshot(record, updatedBy, "published"); err != nil {
		return nil, err
	}

	s.afterMutation(record)
	return record, nil
}

// BatchPublish publishes each id concurrently and reports per-item
// results. Not atomic: a failed item leaves the already-published ones
// published.
func (s *contentService) BatchPublish(ids []string, updatedBy string) *BatchPublishResult {
	result := &BatchPublishResult{
		Succeeded: make([]string, 0, len(ids)),
		Failed:    make(map[string]string),
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := s.Publish(id, updatedBy)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed[id] = err.Error()
				return
			}
			result.Succeeded = append(result.Succeeded, id)
		}(id)
	}
	wg.Wait()

	return result
}

// Search uses the search index when available and falls back to a SQL
// LIKE query otherwise.
func (s *contentService) Search(ctx context.Context, keyword string, page, pageSize int) (*ContentListResult, error) {
	page, pageSize = clampPage(page, pageSize)

	if s.indexer != nil && s.indexer.IsAvailable() {
		ids, total, err := s.indexer.Search(ctx, keyword, page, pageSize)
		if err == nil {
			records := make([]*domain.ContentRecord, 0, len(ids))
			for _, id := range ids {
				record, err := s.contents.FindByID(id)
				if err != nil {
					// Index lag; skip rows already deleted from SQL.
					continue
				}
				records = append(records, record)
			}
			return &ContentListResult{Items: records, Total: total, Page: page, PageSize: pageSize}, nil
		}
		log.Warn().Err(err).Msg("index search failed, falling back to SQL")
	}

	records, total, err := s.contents.Search(keyword, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &ContentListResult{Items: records, Total: total, Page: page, PageSize: pageSize}, nil
}

// applyStatus performs a status transition, stamping PublishedAt on the
// first transition into published.
func (s *contentService) applyStatus(record *domain.ContentRecord, status domain.ContentStatus) {
	if status == domain.StatusPublished && record.PublishedAt == nil {
		now := time.Now()
		record.PublishedAt = &now
	}
	record.Status = status
}

// afterMutation refreshes the caches and the search index after a write.
// Both are best effort.
func (s *contentService) afterMutation(record *domain.ContentRecord) {
	ctx := context.Background()
	if err := s.cache.InvalidateContentLists(ctx); err != nil {
		log.Warn().Err(err).Msg("content list cache invalidation failed")
	}
	if s.indexer != nil && s.indexer.IsAvailable() {
		if err := s.indexer.Index(ctx, record); err != nil {
			log.Warn().Err(err).Str("content_id", record.ID).Msg("search indexing failed")
		}
	}
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
	"github.com/hostpicks/hostpicks-backend/pkg/storage"
	"github.com/rs/zerolog/log"
)

// MediaService handles the media library: object storage uploads plus
// the metadata rows that make them browsable.
type MediaService interface {
	Upload(ctx context.Context, fileName string, body io.Reader, contentType string, size int64, uploadedBy string) (*domain.Media, error)
	Get(id string) (*domain.Media, error)
	List(page, pageSize int) ([]*domain.Media, int64, error)
	Delete(ctx context.Context, id string) error
}

type mediaService struct {
	media repository.MediaRepository
	s3    *storage.S3Client
}

// NewMediaService creates a new MediaService. s3 may be nil, in which
// case uploads are rejected but metadata reads still work.
func NewMediaService(media repository.MediaRepository, s3 *storage.S3Client) MediaService {
	return &mediaService{media: media, s3: s3}
}

func (s *mediaService) Upload(ctx context.Context, fileName string, body io.Reader, contentType string, size int64, uploadedBy string) (*domain.Media, error) {
	if s.s3 == nil {
		return nil, common.ErrStorageUnavailable
	}

	key := storage.GenerateKey("media", fileName)
	result, err := s.s3.Upload(ctx, key, body, contentType, size)
	if err != nil {
		return nil, err
	}

	url := result.CDNURL
	if url == "" {
		url = result.URL
	}

	item := &domain.Media{
		ID:          uuid.New().String(),
		FileName:    fileName,
		Key:         result.Key,
		URL:         url,
		ContentType: contentType,
		Size:        size,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}
	if err := s.media.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *mediaService) Get(id string) (*domain.Media, error) {
	item, err := s.media.FindByID(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return item, nil
}

func (s *mediaService) List(page, pageSize int) ([]*domain.Media, int64, error) {
	page, pageSize = clampPage(page, pageSize)
	return s.media.ListPaged(page, pageSize)
}

func (s *mediaService) Delete(ctx context.Context, id string) error {
	item, err := s.media.FindByID(id)
	if err != nil {
		return common.ErrNotFound
	}

	if err := s.media.Delete(id); err != nil {
		return err
	}

	// Object removal is best effort; an orphaned object beats a
	// metadata row pointing at nothing.
	if s.s3 != nil {
		if err := s.s3.Delete(ctx, item.Key); err != nil {
			log.Warn().Err(err).Str("key", item.Key).Msg("storage object delete failed")
		}
	}
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ContentRepository ---

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) Create(record *domain.ContentRecord) error {
	return m.Called(record).Error(0)
}

func (m *mockContentRepo) FindByID(id string) (*domain.ContentRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentRecord), args.Error(1)
}

func (m *mockContentRepo) FindBySlug(slug string) (*domain.ContentRecord, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentRecord), args.Error(1)
}

func (m *mockContentRepo) ExistsBySlug(slug string, excludeID string) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockContentRepo) Save(record *domain.ContentRecord) error {
	return m.Called(record).Error(0)
}

func (m *mockContentRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockContentRepo) ListPaged(page, pageSize int) ([]*domain.ContentRecord, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.ContentRecord), args.Get(1).(int64), args.Error(2)
}

func (m *mockContentRepo) Search(keyword string, page, pageSize int) ([]*domain.ContentRecord, int64, error) {
	args := m.Called(keyword, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.ContentRecord), args.Get(1).(int64), args.Error(2)
}

// --- Mock VersionRepository ---

type mockVersionRepo struct {
	mock.Mock
}

func (m *mockVersionRepo) Create(snapshot *domain.VersionSnapshot) error {
	return m.Called(snapshot).Error(0)
}

func (m *mockVersionRepo) FindByID(id string) (*domain.VersionSnapshot, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionSnapshot), args.Error(1)
}

func (m *mockVersionRepo) FindByContentID(contentID string) ([]*domain.VersionSnapshot, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VersionSnapshot), args.Error(1)
}

func (m *mockVersionRepo) FindByContentIDAndVersion(contentID string, version int) (*domain.VersionSnapshot, error) {
	args := m.Called(contentID, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionSnapshot), args.Error(1)
}

func (m *mockVersionRepo) NextVersion(contentID string) (int, error) {
	args := m.Called(contentID)
	return args.Int(0), args.Error(1)
}

func (m *mockVersionRepo) MaxVersion(contentID string) (int, error) {
	args := m.Called(contentID)
	return args.Int(0), args.Error(1)
}

// --- Mock TemplateRepository ---

type mockTemplateRepo struct {
	mock.Mock
}

func (m *mockTemplateRepo) Create(template *domain.Template) error {
	return m.Called(template).Error(0)
}

func (m *mockTemplateRepo) FindByID(id string) (*domain.Template, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *mockTemplateRepo) List() ([]*domain.Template, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Template), args.Error(1)
}

func (m *mockTemplateRepo) Save(template *domain.Template) error {
	return m.Called(template).Error(0)
}

func (m *mockTemplateRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

// --- Mock InstanceRepository ---

type mockInstanceRepo struct {
	mock.Mock
}

func (m *mockInstanceRepo) Create(instance *domain.TemplateInstance) error {
	return m.Called(instance).Error(0)
}

func (m *mockInstanceRepo) FindByID(id string) (*domain.TemplateInstance, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TemplateInstance), args.Error(1)
}

func (m *mockInstanceRepo) FindByTemplateID(templateID string) ([]*domain.TemplateInstance, error) {
	args := m.Called(templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TemplateInstance), args.Error(1)
}

func (m *mockInstanceRepo) Save(instance *domain.TemplateInstance) error {
	return m.Called(instance).Error(0)
}

// --- Mock VersionService ---

type mockVersionService struct {
	mock.Mock
}

func (m *mockVersionService) Snapshot(record *domain.ContentRecord, updatedBy, comment string) (*domain.VersionSnapshot, error) {
	args := m.Called(record, updatedBy, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionSnapshot), args.Error(1)
}

func (m *mockVersionService) List(contentID string) ([]domain.VersionListItem, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VersionListItem), args.Error(1)
}

func (m *mockVersionService) Get(versionID string) (*domain.VersionSnapshot, error) {
	args := m.Called(versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionSnapshot), args.Error(1)
}

func (m *mockVersionService) Rollback(contentID, versionID, updatedBy string) (*domain.ContentRecord, error) {
	args := m.Called(contentID, versionID, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentRecord), args.Error(1)
}

func (m *mockVersionService) RollbackToVersion(contentID string, version int, updatedBy string) (*domain.ContentRecord, error) {
	args := m.Called(contentID, version, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentRecord), args.Error(1)
}

func (m *mockVersionService) Diff(contentID, fromVersionID, toVersionID string, locale domain.Locale) (string, error) {
	args := m.Called(contentID, fromVersionID, toVersionID, locale)
	return args.String(0), args.Error(1)
}

// --- Stub cache (in-memory, counts invalidations) ---

type stubCache struct {
	invalidations int
	objects       map[string][]byte
	lists         map[string][]byte
}

func newStubCache() *stubCache {
	return &stubCache{
		objects: make(map[string][]byte),
		lists:   make(map[string][]byte),
	}
}

func (c *stubCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := c.objects[key]
	if !ok {
		return errCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.objects[key] = data
	return nil
}

func (c *stubCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.objects, key)
	}
	return nil
}

func (c *stubCache) GetContentList(ctx context.Context, page, pageSize int) ([]byte, error) {
	key := listKey(page, pageSize)
	if data, ok := c.lists[key]; ok {
		return data, nil
	}
	return nil, errCacheMiss
}

func (c *stubCache) SetContentList(ctx context.Context, page, pageSize int, data interface{}) error {
	return nil
}

func (c *stubCache) InvalidateContentLists(ctx context.Context) error {
	c.invalidations++
	c.lists = make(map[string][]byte)
	return nil
}

func (c *stubCache) IsAvailable() bool              { return true }
func (c *stubCache) Ping(ctx context.Context) error { return nil }

var errCacheMiss = errors.New("cache miss")

func listKey(page, pageSize int) string {
	return fmt.Sprintf("%d:%d", page, pageSize)
}

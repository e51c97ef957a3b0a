package service

import (
	"context"
	"strings"

	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/pkg/elasticsearch"
)

// contentDocument is the flattened shape stored in the search index.
type contentDocument struct {
	TitleEN string `json:"title_en"`
	TitleZH string `json:"title_zh"`
	Slug    string `json:"slug"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Body    string `json:"body"`
}

// esIndexer implements ContentIndexer on Elasticsearch. A nil client
// reports unavailable, which routes search back to SQL.
type esIndexer struct {
	client *elasticsearch.Client
}

// NewESIndexer creates an Elasticsearch-backed ContentIndexer. client
// may be nil.
func NewESIndexer(client *elasticsearch.Client) ContentIndexer {
	return &esIndexer{client: client}
}

func (s *esIndexer) IsAvailable() bool {
	return s.client != nil
}

func (s *esIndexer) Index(ctx context.Context, record *domain.ContentRecord) error {
	if s.client == nil {
		return nil
	}
	doc := contentDocument{
		TitleEN: record.Title.Get(domain.LocaleEN),
		TitleZH: record.Title.Get(domain.LocaleZH),
		Slug:    record.Slug,
		Type:    string(record.Type),
		Status:  string(record.Status),
		Body:    flattenBody(record),
	}
	return s.client.IndexDocument(ctx, elasticsearch.ContentIndex, record.ID, doc)
}

func (s *esIndexer) Remove(ctx context.Context, id string) error {
	if s.client == nil {
		return nil
	}
	return s.client.DeleteDocument(ctx, elasticsearch.ContentIndex, id)
}

func (s *esIndexer) Search(ctx context.Context, keyword string, page, pageSize int) ([]string, int64, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"title_en^3", "title_zh^3", "slug^2", "body"},
			},
		},
	}

	from := (page - 1) * pageSize
	resp, err := s.client.Search(ctx, elasticsearch.ContentIndex, query, from, pageSize)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(resp.Results))
	for i, hit := range resp.Results {
		ids[i] = hit.ID
	}
	return ids, resp.Total, nil
}

// flattenBody joins every locale's intro and section text into one
// searchable blob.
func flattenBody(record *domain.ContentRecord) string {
	var parts []string
	for _, locale := range domain.Locales {
		body, ok := record.Content[locale]
		if !ok {
			continue
		}
		if body.Intro != "" {
			parts = append(parts, body.Intro)
		}
		for _, section := range body.Sections {
			if text := section.Content.ForLocale(locale); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, "\n")
}

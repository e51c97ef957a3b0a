// Package analytics records page-view events to ClickHouse and serves
// the admin traffic summaries. The whole package degrades to no-ops
// when ClickHouse is not configured.
package analytics

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Client wraps a ClickHouse connection for page-view analytics.
type Client struct {
	conn driver.Conn
}

// Config holds ClickHouse connection parameters
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// PageView is a single tracked page hit.
type PageView struct {
	ContentID string    `json:"contentId"`
	Slug      string    `json:"slug"`
	Locale    string    `json:"locale"`
	Referrer  string    `json:"referrer"`
	UserAgent string    `json:"userAgent"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyCount is one day's view total for a content record.
type DailyCount struct {
	Day   time.Time `json:"day"`
	Views uint64    `json:"views"`
}

// NewClient connects to ClickHouse and verifies the connection.
func NewClient(cfg Config) (*Client, error) {
	options := &clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:      5 * time.Second,
		MaxOpenConns:     3,
		MaxIdleConns:     2,
		ConnMaxLifetime:  5 * time.Minute,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	}

	// TLS for non-private networks
	if !isPrivateHost(cfg.Host) {
		options.TLS = &tls.Config{InsecureSkipVerify: true}
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to open ClickHouse: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("analytics: failed to ping ClickHouse: %w", err)
	}

	return &Client{conn: conn}, nil
}

func isPrivateHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "host.docker.internal" ||
		strings.HasPrefix(host, "10.") ||
		strings.HasPrefix(host, "172.") ||
		strings.HasPrefix(host, "192.168.")
}

// IsAvailable reports whether a connection exists.
func (c *Client) IsAvailable() bool {
	return c != nil && c.conn != nil
}

// TrackPageView inserts one page-view row. Safe on a nil client.
func (c *Client) TrackPageView(ctx context.Context, view PageView) error {
	if !c.IsAvailable() {
		return nil
	}
	if view.Timestamp.IsZero() {
		view.Timestamp = time.Now()
	}
	return c.conn.Exec(ctx,
		`INSERT INTO page_views (content_id, slug, locale, referrer, user_agent, ts)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		view.ContentID, view.Slug, view.Locale, view.Referrer, view.UserAgent, view.Timestamp)
}

// ViewsByDay returns daily view counts for one content record over the
// trailing number of days.
func (c *Client) ViewsByDay(ctx context.Context, contentID string, days int) ([]DailyCount, error) {
	if !c.IsAvailable() {
		return nil, nil
	}
	rows, err := c.conn.Query(ctx,
		`SELECT toStartOfDay(ts) AS day, count() AS views
		 FROM page_views
		 WHERE content_id = ? AND ts >= now() - INTERVAL ? DAY
		 GROUP BY day ORDER BY day`,
		contentID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Views); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

// TopContents returns the most viewed content IDs over the trailing
// number of days.
func (c *Client) TopContents(ctx context.Context, days, limit int) (map[string]uint64, error) {
	if !c.IsAvailable() {
		return nil, nil
	}
	rows, err := c.conn.Query(ctx,
		`SELECT content_id, count() AS views
		 FROM page_views
		 WHERE ts >= now() - INTERVAL ? DAY
		 GROUP BY content_id ORDER BY views DESC LIMIT ?`,
		days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]uint64)
	for rows.Next() {
		var id string
		var views uint64
		if err := rows.Scan(&id, &views); err != nil {
			return nil, err
		}
		totals[id] = views
	}
	return totals, rows.Err()
}

// EnsureSchema creates the page_views table when missing.
func (c *Client) EnsureSchema(ctx context.Context) error {
	if !c.IsAvailable() {
		return nil
	}
	return c.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS page_views (
			content_id String,
			slug       String,
			locale     LowCardinality(String),
			referrer   String,
			user_agent String,
			ts         DateTime
		) ENGINE = MergeTree()
		ORDER BY (content_id, ts)
		TTL ts + INTERVAL 180 DAY`)
}

// Close closes the connection
func (c *Client) Close() error {
	if c != nil && c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

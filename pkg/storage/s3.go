// Package storage handles media object storage on any S3-compatible
// backend (AWS S3, Cloudflare R2, MinIO).
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	pkglogger "github.com/hostpicks/hostpicks-backend/pkg/logger"
)

// S3Config holds the storage connection settings.
type S3Config struct {
	Endpoint        string // empty for AWS; set for R2/MinIO
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	CDNURL          string // public base serving the bucket, if any
	BasePath        string // key prefix for every object
	ForcePathStyle  bool   // required by MinIO and R2
}

// S3Client uploads and deletes media objects and resolves their public
// URLs.
type S3Client struct {
	client   *s3.Client
	bucket   string
	cdnURL   string
	basePath string
}

// NewS3Client builds a storage client from static credentials.
func NewS3Client(cfg S3Config) (*S3Client, error) {
	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	basePath := cfg.BasePath
	if basePath != "" && !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}

	pkglogger.GetLogger().Info().
		Str("bucket", cfg.Bucket).
		Str("endpoint", cfg.Endpoint).
		Msg("media storage ready")

	return &S3Client{
		client:   client,
		bucket:   cfg.Bucket,
		cdnURL:   strings.TrimRight(cfg.CDNURL, "/"),
		basePath: basePath,
	}, nil
}

// UploadResult describes a stored object.
type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	CDNURL      string `json:"cdn_url,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Upload stores one object under basePath+key.
func (c *S3Client) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*UploadResult, error) {
	fullKey := c.basePath + key

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(fullKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", fullKey, err)
	}

	result := &UploadResult{
		Key:         fullKey,
		URL:         c.objectURL(fullKey),
		ContentType: contentType,
		Size:        size,
	}
	if c.cdnURL != "" {
		result.CDNURL = c.cdnURL + "/" + fullKey
	}
	return result, nil
}

// Delete removes one object. The key is the full stored key, basePath
// included.
func (c *S3Client) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// GetCDNURL resolves the public URL for a stored key, preferring the
// CDN when one is configured.
func (c *S3Client) GetCDNURL(key string) string {
	if c.cdnURL != "" {
		return c.cdnURL + "/" + url.PathEscape(key)
	}
	return c.objectURL(key)
}

func (c *S3Client) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key)
}

// GenerateKey derives a collision-safe storage key: date-bucketed with
// a millisecond suffix so re-uploads of the same filename never clash.
func GenerateKey(prefix, filename string) string {
	now := time.Now()
	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	return fmt.Sprintf("%s/%d/%02d/%02d/%s_%d%s",
		prefix, now.Year(), now.Month(), now.Day(),
		base, now.UnixMilli(), ext)
}

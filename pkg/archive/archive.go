// Package archive сохраняет отправленные статьи в S3-совместимое хранилище.
//
// "Тупой" клиент: только кладёт текст по ключу, ничего не читает.
package archive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ilkoid/phoenix-lab/pkg/config"
)

// Archiver сохраняет копию отправленной статьи.
type Archiver interface {
	Store(ctx context.Context, entry Entry) (string, error)
}

// Entry — отправленная статья.
type Entry struct {
	Text     string
	Style    string
	Channels []string
	SentAt   time.Time
}

// Client — Archiver поверх minio.
type Client struct {
	api    *minio.Client
	bucket string
	prefix string
}

var _ Archiver = (*Client)(nil)

// New создает клиент из конфигурации архива.
func New(cfg config.ArchiveConfig) (*Client, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Client{
		api:    minioClient,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// Store загружает текст статьи и возвращает ключ объекта.
func (c *Client) Store(ctx context.Context, entry Entry) (string, error) {
	key := ObjectKey(c.prefix, entry)

	opts := minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
		UserMetadata: map[string]string{
			"style":    entry.Style,
			"channels": strings.Join(entry.Channels, ","),
		},
	}

	reader := strings.NewReader(entry.Text)
	if _, err := c.api.PutObject(ctx, c.bucket, key, reader, reader.Size(), opts); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return key, nil
}

// ObjectKey строит ключ вида <prefix>/2026/10/19/<unix-nanos>-<style>.txt.
func ObjectKey(prefix string, entry Entry) string {
	sentAt := entry.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}
	sentAt = sentAt.UTC()

	style := entry.Style
	if style == "" {
		style = "unknown"
	}

	name := fmt.Sprintf("%d-%s.txt", sentAt.UnixNano(), style)
	return path.Join(strings.Trim(prefix, "/"), sentAt.Format("2006/01/02"), name)
}

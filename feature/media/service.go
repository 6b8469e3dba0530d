package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"menu-manager/core/storage"
	"menu-manager/feature/media/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// prefix namespaces menu imagery inside the shared bucket.
const prefix = "media/"

// ErrNotFound indicates the requested media object does not exist.
var ErrNotFound = errors.New("media object not found")

// ErrInvalidName indicates the object name is empty or escapes the media prefix.
var ErrInvalidName = errors.New("invalid media object name")

// Service stores menu imagery on the object storage bucket.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new media service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Upload stores one object under the media prefix.
func (s *Service) Upload(ctx context.Context, name, contentType string, body []byte) (*models.Object, error) {
	key, err := objectKey(name)
	if err != nil {
		return nil, err
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media object: %w", err)
	}

	s.logger.Debug("Media object stored",
		zap.String("name", name),
		zap.Int64("size", info.Size))

	return &models.Object{
		Name:        name,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

// Get streams one stored object.
func (s *Service) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	key, err := objectKey(name)
	if err != nil {
		return nil, err
	}

	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load media object: %w", err)
	}

	return object, nil
}

// List returns metadata for every stored object under the media prefix.
func (s *Service) List(ctx context.Context) ([]models.Object, error) {
	objects := make([]models.Object, 0)

	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list media objects: %w", info.Err)
		}

		objects = append(objects, models.Object{
			Name:         strings.TrimPrefix(info.Key, prefix),
			Size:         info.Size,
			ContentType:  info.ContentType,
			LastModified: info.LastModified,
		})
	}

	return objects, nil
}

// Delete removes one stored object.
func (s *Service) Delete(ctx context.Context, name string) error {
	key, err := objectKey(name)
	if err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete media object: %w", err)
	}

	return nil
}

func objectKey(name string) (string, error) {
	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == "/" || strings.HasPrefix(cleaned, "..") || strings.HasPrefix(cleaned, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return prefix + cleaned, nil
}

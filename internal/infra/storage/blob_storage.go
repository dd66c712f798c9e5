// Package storage provides the media directory backend for uploaded photos.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"

	"cityhub/config"
	"cityhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// blobStorage implements service.FileStorage on a gocloud blob bucket.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for FileStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens a file-backed bucket over the configured media
// directory, creating the directory if needed.
func NewBlobStorage(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.MediaPath == "" {
		return nil, errors.New("storage media path is not configured")
	}

	if err := os.MkdirAll(cfg.MediaPath, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create media directory")
	}

	bucket, err := fileblob.OpenBucket(cfg.MediaPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Logger.Info("File storage initialized",
		slog.String("media_path", cfg.MediaPath),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing file storage bucket")

			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save writes the content under the given filename, overwriting any previous
// object with that name.
func (s *blobStorage) Save(ctx context.Context, filename string, content io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, filename, nil)
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return errors.Wrap(err, "failed to write media object")
	}

	return errors.Wrap(writer.Close(), "failed to close bucket writer")
}

// Remove deletes the object with the given filename.
func (s *blobStorage) Remove(ctx context.Context, filename string) error {
	return errors.Wrap(s.bucket.Delete(ctx, filename), "failed to delete media object")
}

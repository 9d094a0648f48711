package media

import (
	"context"
	"fmt"

	"github.com/djsar/stagepage/internal/modules/media/application"
	"github.com/djsar/stagepage/internal/modules/media/domain"
	"github.com/djsar/stagepage/internal/modules/media/infrastructure/s3"
	"github.com/djsar/stagepage/internal/shared/infrastructure/config"
)

// Module represents the Media module
type Module struct {
	service *application.MediaService
	storage domain.BlobStorage
}

// NewModule creates and initializes the Media module on S3 storage.
func NewModule(ctx context.Context, cfg config.MediaConfig) (*Module, error) {
	storage, err := s3.NewS3Storage(ctx, s3.S3Config{
		BucketName: cfg.S3Bucket,
		Region:     cfg.S3Region,
		Endpoint:   cfg.S3Endpoint,
		AccessKey:  cfg.S3AccessKey,
		SecretKey:  cfg.S3SecretKey,
		UseSSL:     cfg.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
	}

	return &Module{
		service: application.NewMediaService(storage, cfg.PublicBaseURL),
		storage: storage,
	}, nil
}

// Service returns the media service for use by other modules
func (m *Module) Service() *application.MediaService {
	return m.service
}

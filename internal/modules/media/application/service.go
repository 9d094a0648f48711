package application

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/djsar/stagepage/internal/modules/media/domain"
)

// MediaService uploads profile images and hands back their public URL.
type MediaService struct {
	storage       domain.BlobStorage
	publicBaseURL string
}

// NewMediaService creates a media service. publicBaseURL is the fixed host
// the bucket is served from, e.g. https://media.djs.ar.
func NewMediaService(storage domain.BlobStorage, publicBaseURL string) *MediaService {
	return &MediaService{
		storage:       storage,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Store uploads a portrait and returns its public URL. The epoch-millis
// suffix keeps keys unique across retries for the same subdomain.
func (s *MediaService) Store(ctx context.Context, subdomain string, file io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("profile-images/%s-%d.%s", subdomain, time.Now().UnixMilli(), extensionFor(contentType))

	if err := s.storage.Upload(ctx, key, file, contentType); err != nil {
		return "", err
	}
	return s.publicBaseURL + "/" + key, nil
}

// extensionFor maps a MIME type onto a file extension. Unknown types land on
// a neutral .bin rather than being rejected.
func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	default:
		return "bin"
	}
}

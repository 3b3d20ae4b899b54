package ports

import (
	"context"
	"errors"

	"podscrape/internal/app/model"
)

var (
	// ErrNoCredential is returned when the platform API key is not
	// configured at all.
	ErrNoCredential error = errors.New("no API key configured")
	// ErrQuotaOrAuth is returned on quota exhaustion or credential
	// rejection by the platform API.
	ErrQuotaOrAuth error = errors.New("API quota exceeded or key rejected")
)

// ForTimestamping resolves the instant a video was published on the
// external video platform. Implementations return ports.ErrNotFound
// when the platform has no matching video; any other error is a
// credential, quota or transport failure. All failure classes map to
// an absent timestamp in the assembled record and differ only in the
// log message.
type ForTimestamping interface {
	PublishedAt(ctx context.Context, videoID string) (model.Timestamp, error)
}

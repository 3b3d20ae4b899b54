package ports

import "context"

// ForDecoding extracts the playback length from raw media bytes. The
// adapter sniffs the container format itself; callers only gate on
// the URL's file extension before downloading.
type ForDecoding interface {
	// Duration returns the playback length in seconds.
	Duration(ctx context.Context, data []byte) (float64, error)
}

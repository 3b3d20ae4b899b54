// youtube queries the YouTube Data API v3 for the publish instant of
// a single video. Implements the ports.ForTimestamping interface.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
	"podscrape/internal/infra/adapters/logger"
)

const defaultAPIURL = "https://www.googleapis.com/youtube/v3/videos"

type videosResponse struct {
	Items []struct {
		Snippet struct {
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

type forTimestamping struct {
	apiKey string
	apiURL string
	client *http.Client
}

// New returns a Data API adapter implementing the ForTimestamping
// port interface. An empty apiKey is allowed; every PublishedAt call
// then returns ports.ErrNoCredential so the resolver degrades to an
// absent timestamp instead of crashing the run.
func New(apiKey string, timeout time.Duration) ports.ForTimestamping {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &forTimestamping{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: timeout},
	}
}

// PublishedAt queries videos.list for one id and decomposes the first
// item's ISO-8601 publish instant. A response with zero items returns
// ports.ErrNotFound; HTTP 403 returns ports.ErrQuotaOrAuth.
func (y *forTimestamping) PublishedAt(ctx context.Context, videoID string) (model.Timestamp, error) {
	l := logger.FromContext(ctx)
	if y.apiKey == "" {
		return model.Timestamp{}, ports.ErrNoCredential
	}
	if videoID == "" {
		return model.Timestamp{}, fmt.Errorf("empty video id: %w", ports.ErrNotFound)
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", videoID)
	params.Set("key", y.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return model.Timestamp{}, err
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return model.Timestamp{}, fmt.Errorf("videos.list %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.Timestamp{}, fmt.Errorf("videos.list %s: %s: %w", videoID, string(body), ports.ErrQuotaOrAuth)
	case resp.StatusCode != http.StatusOK:
		return model.Timestamp{}, fmt.Errorf("videos.list %s: status %d", videoID, resp.StatusCode)
	}

	var result videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.Timestamp{}, fmt.Errorf("decode videos.list response: %w", err)
	}
	if len(result.Items) == 0 {
		return model.Timestamp{}, fmt.Errorf("video %s: %w", videoID, ports.ErrNotFound)
	}

	publishedAt := result.Items[0].Snippet.PublishedAt
	instant, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return model.Timestamp{}, fmt.Errorf("invalid publishedAt %q: %w", publishedAt, err)
	}
	l.Debug("Resolved publish instant", "videoID", videoID, "publishedAt", publishedAt)
	// Reformat through the canonical wall-clock layout so the result
	// equals decomposing the same string.
	return model.ParseTimestamp(instant.UTC().Format(model.TimestampLayout)), nil
}

package scrape

import (
	"context"
	"fmt"
	"testing"

	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
)

// stubFetcher serves canned pages and probe results without touching
// the network.
type stubFetcher struct {
	t *testing.T
	// pages maps URL to response body; URLs not in the map fail.
	pages map[string][]byte
	// live holds the URLs whose liveness probe succeeds.
	live map[string]bool
	// forbidFetch makes any Fetch call fail the test, used to prove a
	// resolver never goes to the network.
	forbidFetch bool
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if s.forbidFetch {
		s.t.Fatalf("unexpected fetch of %s", url)
	}
	if body, ok := s.pages[url]; ok {
		return body, nil
	}
	return nil, fmt.Errorf("%s: status 404: %w", url, ports.ErrNotFound)
}

func (s *stubFetcher) Probe(ctx context.Context, url string) error {
	if s.live[url] {
		return nil
	}
	return fmt.Errorf("%s: status 404: %w", url, ports.ErrNotFound)
}

type stubStamper struct {
	ts  model.Timestamp
	err error
}

func (s *stubStamper) PublishedAt(ctx context.Context, videoID string) (model.Timestamp, error) {
	return s.ts, s.err
}

type stubDecoder struct {
	seconds float64
	err     error
}

func (s *stubDecoder) Duration(ctx context.Context, data []byte) (float64, error) {
	return s.seconds, s.err
}

func testSpec() *model.Spec {
	return &model.Spec{
		ListingURL: "https://lexfridman.com/podcast/",
		AudioPrefixes: []string{
			"https://content.blubrry.com/takeituneasy/lex_ai_%s.mp3",
			"https://content.blubrry.com/takeituneasy/mit_ai_%s.mp3",
		},
	}
}

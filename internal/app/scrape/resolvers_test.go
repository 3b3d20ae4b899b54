package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=Gfr50f6ZBvo", "Gfr50f6ZBvo"},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PL1&v=Gfr50f6ZBvo", "Gfr50f6ZBvo"},
		// The match is anchored at the marker, not at string start.
		{"garbage prefix https://www.youtube.com/watch?v=Gfr50f6ZBvo", "Gfr50f6ZBvo"},
		{"https://lexfridman.com/podcast/", ""},
		{"https://www.youtube.com/watch?v=tooshort12", ""},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ExtractVideoID(tc.url), tc.url)
	}
}

func TestParseDescriptionThirdParagraphTruncated(t *testing.T) {
	body := []byte(`<html><body><div class="entry-content">
<p>Sponsor blurb.</p>
<p>Links.</p>
<p>A conversation about intelligence. Please subscribe and leave a review.</p>
<p>Transcript below.</p>
</div></body></html>`)
	got, err := parseDescription(body)
	assert.NoError(t, err)
	assert.Equal(t, "A conversation about intelligence.", got)
}

func TestParseDescriptionThirdParagraphWithoutMarker(t *testing.T) {
	body := []byte(`<div class="entry-content"><p>a</p><p>b</p><p>Just the description.</p></div>`)
	got, err := parseDescription(body)
	assert.NoError(t, err)
	assert.Equal(t, "Just the description.", got)
}

func TestParseDescriptionSpanFallback(t *testing.T) {
	body := []byte(`<div class="entry-content"><p>only one</p><span>Short inline description.</span></div>`)
	got, err := parseDescription(body)
	assert.NoError(t, err)
	assert.Equal(t, "Short inline description.", got)
}

func TestParseDescriptionMissingContainer(t *testing.T) {
	got, err := parseDescription([]byte(`<html><body><p>nothing here</p></body></html>`))
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestResolveDescriptionFetchFailure(t *testing.T) {
	c := NewCollector(testSpec(), &stubFetcher{t: t}, nil, nil)
	assert.Equal(t, "", c.resolveDescription(context.Background(), "https://lexfridman.com/missing"))
}

func TestResolveDurationRejectsNonAudio(t *testing.T) {
	// forbidFetch proves the resolver makes no network call for an
	// unrecognized extension.
	c := NewCollector(testSpec(), &stubFetcher{t: t, forbidFetch: true}, nil, &stubDecoder{seconds: 99})
	ctx := context.Background()
	assert.Zero(t, c.resolveDuration(ctx, "https://example.com/notes.pdf"))
	assert.Zero(t, c.resolveDuration(ctx, "https://example.com/episode"))
	assert.Zero(t, c.resolveDuration(ctx, ""))
	assert.Zero(t, c.resolveDuration(ctx, "://not a url.mp3%"))
}

func TestResolveDurationNetworkFailure(t *testing.T) {
	c := NewCollector(testSpec(), &stubFetcher{t: t}, nil, &stubDecoder{seconds: 99})
	assert.Zero(t, c.resolveDuration(context.Background(), "https://example.com/episode.mp3"))
}

func TestResolveDurationDecodeFailure(t *testing.T) {
	f := &stubFetcher{t: t, pages: map[string][]byte{"https://example.com/episode.mp3": []byte("bytes")}}
	c := NewCollector(testSpec(), f, nil, &stubDecoder{err: errors.New("bad frames")})
	assert.Zero(t, c.resolveDuration(context.Background(), "https://example.com/episode.mp3"))
}

func TestResolveDurationRoundsToTwoDecimals(t *testing.T) {
	f := &stubFetcher{t: t, pages: map[string][]byte{
		"https://example.com/episode.mp3": []byte("bytes"),
		"https://example.com/EPISODE.MP3": []byte("bytes"),
	}}
	c := NewCollector(testSpec(), f, nil, &stubDecoder{seconds: 12.4932})
	assert.Equal(t, 12.49, c.resolveDuration(context.Background(), "https://example.com/episode.mp3"))
	// Extension matching is case-insensitive.
	assert.Equal(t, 12.49, c.resolveDuration(context.Background(), "https://example.com/EPISODE.MP3"))
}

func TestResolvePublishedAt(t *testing.T) {
	ctx := context.Background()
	want := model.ParseTimestamp("2022-11-04 16:09:32")

	c := NewCollector(testSpec(), &stubFetcher{t: t}, &stubStamper{ts: want}, nil)
	assert.Equal(t, want, c.resolvePublishedAt(ctx, "Gfr50f6ZBvo", "Episode"))

	// Empty id never reaches the platform API.
	c = NewCollector(testSpec(), &stubFetcher{t: t}, &stubStamper{ts: want}, nil)
	assert.True(t, c.resolvePublishedAt(ctx, "", "Episode").IsZero())

	// All failure classes collapse to the absent timestamp.
	for _, err := range []error{ports.ErrNotFound, ports.ErrNoCredential, ports.ErrQuotaOrAuth, errors.New("connection reset")} {
		c = NewCollector(testSpec(), &stubFetcher{t: t}, &stubStamper{err: err}, nil)
		assert.True(t, c.resolvePublishedAt(ctx, "Gfr50f6ZBvo", "Episode").IsZero(), err)
	}
}

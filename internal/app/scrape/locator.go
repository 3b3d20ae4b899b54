package scrape

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"podscrape/internal/infra/adapters/logger"
)

// thumbnailPattern captures the base filename token from an episode
// thumbnail URL. Thumbnail filenames correlate with, but do not
// always match, the true audio filename; the hosting prefix has also
// drifted over the years, which is why the candidate templates are an
// ordered configuration list rather than branches here.
var thumbnailPattern = regexp.MustCompile(`^https://lexfridman\.com/files/thumbs_ai_podcast/(.*)\.png$`)

// LocateAudio resolves the URL of an episode's audio asset. It first
// constructs candidate URLs from the thumbnail filename and the
// configured hosting-prefix templates, probing each in order, and
// falls back to scraping the detail page for an explicit audio link.
// Every failure path yields an empty string; locating audio is never
// fatal.
func (c *Collector) LocateAudio(ctx context.Context, thumbnailURL, pageURL string) string {
	l := logger.FromContext(ctx)

	if m := thumbnailPattern.FindStringSubmatch(thumbnailURL); len(m) == 2 {
		for _, prefix := range c.spec.AudioPrefixes {
			candidate := fmt.Sprintf(prefix, m[1])
			if c.probe(ctx, candidate) != "" {
				return candidate
			}
		}
	} else if thumbnailURL != "" {
		l.Debug("Thumbnail does not match naming convention, skipping candidate construction", "url", thumbnailURL)
	}

	return c.scrapeAudioLink(ctx, pageURL)
}

// scrapeAudioLink fetches the episode detail page, extracts the
// explicit audio link anchor and validates it with a liveness probe.
func (c *Collector) scrapeAudioLink(ctx context.Context, pageURL string) string {
	l := logger.FromContext(ctx)
	body, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		l.Error("Unable to fetch episode page for audio link", "url", pageURL, "cause", err)
		return ""
	}
	audioURL, err := parseAudioLink(body)
	if err != nil || audioURL == "" {
		l.Error("No audio link anchor on episode page", "url", pageURL, "cause", err)
		return ""
	}
	return c.probe(ctx, audioURL)
}

// parseAudioLink extracts the target of the audio link anchor from
// detail page HTML, identified by its CSS class marker.
func parseAudioLink(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	href, _ := doc.Find("a.powerpress_link_pinw").First().Attr("href")
	return href, nil
}

// probe returns url unchanged when it answers 200 OK and an empty
// string on any other response.
func (c *Collector) probe(ctx context.Context, url string) string {
	l := logger.FromContext(ctx)
	if err := c.fetcher.Probe(ctx, url); err != nil {
		l.Debug("Liveness probe failed", "url", url, "cause", err)
		return ""
	}
	return url
}

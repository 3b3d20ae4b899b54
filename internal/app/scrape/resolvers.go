package scrape

import (
	"bytes"
	"context"
	"math"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podscrape/internal/infra/adapters/logger"
)

// descriptionMarker starts the trailing call-to-action appended to
// most episode descriptions; the description is cut right before it.
const descriptionMarker = " Please "

// videoIDPattern pulls the 11-char video id from any YouTube URL
// form. Anchored at the marker, not at string start, so junk prefixes
// around an otherwise valid URL do not matter.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// audioExtensions are the recognized audio file extensions the
// duration resolver downloads and decodes. Anything else is rejected
// without a network call.
var audioExtensions = map[string]bool{
	".mp3": true,
	".m4a": true,
	".m4b": true,
	".mp4": true,
}

// ExtractVideoID returns the video identifier embedded in youtubeURL,
// or an empty string when no marker pattern matches.
func ExtractVideoID(youtubeURL string) string {
	m := videoIDPattern.FindStringSubmatch(youtubeURL)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// resolveDescription fetches the episode detail page and extracts the
// description text. Any failure yields an empty string, never an
// error; a missing description must not discard the episode.
func (c *Collector) resolveDescription(ctx context.Context, pageURL string) string {
	l := logger.FromContext(ctx)
	body, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		l.Error("Unable to fetch episode page for description", "url", pageURL, "cause", err)
		return ""
	}
	description, err := parseDescription(body)
	if err != nil {
		l.Error("Unable to parse description", "url", pageURL, "cause", err)
		return ""
	}
	return description
}

// parseDescription extracts the description from detail page HTML:
// the third paragraph of the content container, truncated before the
// call-to-action marker, or the first inline span when fewer than
// three paragraphs exist.
func parseDescription(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	content := doc.Find("div.entry-content").First()
	if content.Length() == 0 {
		return "", nil
	}
	paragraphs := content.Find("p")
	if paragraphs.Length() > 2 {
		text := paragraphs.Eq(2).Text()
		if idx := strings.Index(text, descriptionMarker); idx >= 0 {
			text = text[:idx]
		}
		return text, nil
	}
	return content.Find("span").First().Text(), nil
}

// resolveDuration downloads the audio asset and decodes its playback
// length in seconds, rounded to 2 decimal places. References without
// a recognized audio extension are rejected up front; every fetch or
// decode failure maps to 0.
func (c *Collector) resolveDuration(ctx context.Context, audioURL string) float64 {
	l := logger.FromContext(ctx)
	if !hasAudioExtension(audioURL) {
		if audioURL != "" {
			l.Warn("Reference does not carry a recognized audio extension, duration unresolved", "url", audioURL)
		}
		return 0
	}
	data, err := c.fetcher.Fetch(ctx, audioURL)
	if err != nil {
		l.Error("Unable to retrieve audio file", "url", audioURL, "cause", err)
		return 0
	}
	seconds, err := c.decoder.Duration(ctx, data)
	if err != nil {
		l.Error("Unable to decode audio duration", "url", audioURL, "cause", err)
		return 0
	}
	return math.Round(seconds*100) / 100
}

// hasAudioExtension reports whether the URL path ends in a recognized
// audio file extension, case-insensitively.
func hasAudioExtension(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return audioExtensions[strings.ToLower(path.Ext(u.Path))]
}

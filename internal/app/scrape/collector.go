// Package scrape implements the episode extraction pipeline: listing
// enumeration, per-field resolvers, the audio locator chain, record
// assembly and deduplication. Resolvers are best-effort; each maps
// its own failures to the field's absent value so one degraded
// upstream source never discards an episode or aborts the batch. The
// only fatal error of a run is failing to fetch the listing index,
// since no entries can be enumerated without it.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
	"podscrape/internal/infra/adapters/logger"
)

// Collector runs one full, independent pass over the listing page.
// It is single-threaded; the deduplicating accumulator is only ever
// appended to by Run.
type Collector struct {
	spec    *model.Spec
	fetcher ports.ForFetching
	stamper ports.ForTimestamping
	decoder ports.ForDecoding
}

func NewCollector(spec *model.Spec, fetcher ports.ForFetching, stamper ports.ForTimestamping, decoder ports.ForDecoding) *Collector {
	return &Collector{
		spec:    spec,
		fetcher: fetcher,
		stamper: stamper,
		decoder: decoder,
	}
}

// Run enumerates all listing entries in source order, assembles one
// record per entry and deduplicates by full field equality, first
// occurrence wins. Encountering a duplicate is tolerated silently and
// never terminates enumeration.
func (c *Collector) Run(ctx context.Context) ([]model.Record, error) {
	l := logger.FromContext(ctx)

	body, err := c.fetcher.Fetch(ctx, c.spec.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch listing %s: %w", c.spec.ListingURL, err)
	}
	entries, err := ParseListing(body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse listing %s: %w", c.spec.ListingURL, err)
	}
	l.Info("Enumerated listing entries", "url", c.spec.ListingURL, "entries", len(entries))

	seen := make(map[model.Record]struct{}, len(entries))
	records := make([]model.Record, 0, len(entries))
	for _, entry := range entries {
		record := c.assemble(ctx, entry)
		if _, dup := seen[record]; dup {
			l.Debug("Skipping duplicate record", "title", record.Title)
			continue
		}
		seen[record] = struct{}{}
		records = append(records, record)
	}
	return records, nil
}

// ParseListing extracts all episode summary blocks from the listing
// index HTML. An entry needs at least its pair of outbound links (the
// video link and the detail page); blocks missing the pair are
// skipped.
func ParseListing(body []byte) ([]model.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var entries []model.Entry
	doc.Find("div.guest").Each(func(i int, s *goquery.Selection) {
		var links []string
		s.Find("div.vid-materials a").EachWithBreak(func(i int, a *goquery.Selection) bool {
			if href, ok := a.Attr("href"); ok {
				links = append(links, href)
			}
			return len(links) < 2
		})
		if len(links) < 2 {
			return
		}
		thumbnail, _ := s.Find(".thumb-youtube img").First().Attr("src")
		entries = append(entries, model.Entry{
			Title:        strings.TrimSpace(s.Find(".vid-title a").First().Text()),
			Guest:        strings.TrimSpace(s.Find(".vid-person").First().Text()),
			YoutubeURL:   links[0],
			PageURL:      links[1],
			ThumbnailURL: thumbnail,
		})
	})
	return entries, nil
}

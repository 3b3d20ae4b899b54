package scrape

import (
	"context"
	"errors"

	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
	"podscrape/internal/infra/adapters/logger"
)

// assemble produces one record from one listing entry. Resolvers run
// in dependency order and fail independently: a field that cannot be
// resolved keeps its absent value while the rest of the record is
// still assembled.
func (c *Collector) assemble(ctx context.Context, entry model.Entry) model.Record {
	record := model.Record{
		Title:        entry.Title,
		Guest:        entry.Guest,
		YoutubeURL:   entry.YoutubeURL,
		ThumbnailURL: entry.ThumbnailURL,
	}
	record.Description = c.resolveDescription(ctx, entry.PageURL)
	record.AudioFileURL = c.LocateAudio(ctx, entry.ThumbnailURL, entry.PageURL)
	record.Duration = c.resolveDuration(ctx, record.AudioFileURL)
	record.PublishedAt = c.resolvePublishedAt(ctx, ExtractVideoID(entry.YoutubeURL), entry.Title)
	return record
}

// resolvePublishedAt queries the video platform for the publish
// instant. Every failure class yields the absent (zero) timestamp;
// the classes only differ in how they are logged.
func (c *Collector) resolvePublishedAt(ctx context.Context, videoID, title string) model.Timestamp {
	l := logger.FromContext(ctx)
	if videoID == "" {
		l.Error("No video id could be extracted, publish timestamp unresolved", "title", title)
		return model.Timestamp{}
	}
	ts, err := c.stamper.PublishedAt(ctx, videoID)
	switch {
	case err == nil:
		return ts
	case errors.Is(err, ports.ErrNotFound):
		l.Error("Platform has no matching video", "videoID", videoID, "title", title)
	case errors.Is(err, ports.ErrNoCredential):
		l.Warn("No API key configured, publish timestamp unresolved", "title", title)
	case errors.Is(err, ports.ErrQuotaOrAuth):
		l.Error("There is some problem with either the API key or the quota", "videoID", videoID, "cause", err)
	default:
		l.Error("Unable to resolve publish timestamp", "videoID", videoID, "title", title, "cause", err)
	}
	return model.Timestamp{}
}

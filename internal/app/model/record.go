package model

import (
	"strconv"
	"time"
)

// TimestampLayout is the canonical wall-clock format the publish
// instant is decomposed from and reformatted to.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one scraped episode summary block from the listing index
// page. It is created during batch enumeration, consumed once by the
// assembler and then discarded.
type Entry struct {
	Title        string
	Guest        string
	YoutubeURL   string
	PageURL      string
	ThumbnailURL string
}

// Record is the finalized metadata tuple for one episode. Absent
// fields hold their per-field default: empty string for text and URL
// fields, 0 for Duration, the zero Timestamp for PublishedAt.
// Records are comparable and deduplicated by full field equality.
type Record struct {
	Title        string
	Guest        string
	Description  string
	Duration     float64
	YoutubeURL   string
	AudioFileURL string
	ThumbnailURL string
	PublishedAt  Timestamp
}

// Empty reports whether no field of the record could be resolved.
// Such records are filtered out before the CSV is written.
func (r Record) Empty() bool {
	return r.Title == "" &&
		r.Guest == "" &&
		r.Description == "" &&
		r.Duration == 0 &&
		r.YoutubeURL == "" &&
		r.AudioFileURL == "" &&
		r.ThumbnailURL == "" &&
		r.PublishedAt.IsZero()
}

// Row returns the record as a CSV row matching Header.
func (r Record) Row() []string {
	return []string{
		r.Title,
		r.Guest,
		r.Description,
		strconv.FormatFloat(r.Duration, 'f', -1, 64),
		r.YoutubeURL,
		r.AudioFileURL,
		r.ThumbnailURL,
		r.PublishedAt.Date(),
		r.PublishedAt.Clock(),
	}
}

// Header is the fixed 9-column CSV header.
func Header() []string {
	return []string{
		"title",
		"guest",
		"description",
		"duration",
		"youtube_url",
		"audio_file_url",
		"thumbnail_url",
		"date",
		"time",
	}
}

// Timestamp is the instant an episode was published on the video
// platform. The zero value means the instant could not be resolved;
// the calendar date and time of day are then both absent, never one
// without the other.
type Timestamp struct {
	time.Time
}

// ParseTimestamp decomposes a "YYYY-MM-DD HH:MM:SS" string into a
// Timestamp. Malformed input yields the zero Timestamp, never an
// error.
func ParseTimestamp(s string) Timestamp {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return Timestamp{}
	}
	return Timestamp{Time: t}
}

// Date returns the calendar date as YYYY-MM-DD, or an empty string
// when the timestamp is absent.
func (t Timestamp) Date() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Clock returns the time of day as HH:MM:SS, or an empty string when
// the timestamp is absent.
func (t Timestamp) Clock() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05")
}

// String formats the timestamp in TimestampLayout, such that
// ParseTimestamp(t.String()) round-trips. The zero Timestamp formats
// as an empty string.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestampRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2022-11-04 16:09:32",
		"2000-01-01 00:00:00",
		"1999-12-31 23:59:59",
	} {
		ts := ParseTimestamp(s)
		assert.False(t, ts.IsZero(), s)
		assert.Equal(t, s, ts.String())
	}
}

func TestParseTimestampMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"2022-11-04T16:09:32Z",
		"2022-11-04",
		"04/11/2022 16:09:32",
		"2022-11-04 25:09:32",
		"not a timestamp",
	} {
		ts := ParseTimestamp(s)
		assert.True(t, ts.IsZero(), s)
		assert.Equal(t, "", ts.Date(), s)
		assert.Equal(t, "", ts.Clock(), s)
		assert.Equal(t, "", ts.String(), s)
	}
}

func TestTimestampDateAndClockArePairwise(t *testing.T) {
	ts := ParseTimestamp("2022-11-04 16:09:32")
	assert.Equal(t, "2022-11-04", ts.Date())
	assert.Equal(t, "16:09:32", ts.Clock())
}

func TestRecordEmpty(t *testing.T) {
	assert.True(t, Record{}.Empty())
	assert.False(t, Record{Title: "Episode"}.Empty())
	assert.False(t, Record{Duration: 0.01}.Empty())
	assert.False(t, Record{PublishedAt: ParseTimestamp("2022-11-04 16:09:32")}.Empty())
}

func TestRecordRow(t *testing.T) {
	r := Record{
		Title:        "Demis Hassabis: DeepMind",
		Guest:        "Demis Hassabis",
		Description:  "A conversation about AI.",
		Duration:     12.49,
		YoutubeURL:   "https://www.youtube.com/watch?v=Gfr50f6ZBvo",
		AudioFileURL: "https://content.blubrry.com/takeituneasy/lex_ai_demis_hassabis.mp3",
		ThumbnailURL: "https://lexfridman.com/files/thumbs_ai_podcast/demis_hassabis.png",
		PublishedAt:  ParseTimestamp("2022-07-01 17:38:05"),
	}
	row := r.Row()
	assert.Equal(t, len(Header()), len(row))
	assert.Equal(t, "12.49", row[3])
	assert.Equal(t, "2022-07-01", row[7])
	assert.Equal(t, "17:38:05", row[8])

	unresolved := Record{Title: "Episode"}
	assert.Equal(t, "0", unresolved.Row()[3])
	assert.Equal(t, "", unresolved.Row()[7])
	assert.Equal(t, "", unresolved.Row()[8])
}

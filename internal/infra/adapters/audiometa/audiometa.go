// audiometa decodes the playback length from raw media bytes,
// sniffing the container format first. Implements the
// ports.ForDecoding interface. mp3 frames are decoded via
// mp3duration, mp4-family containers via the Moov Mvhd box.
package audiometa

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alfg/mp4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sa6mwa/mp3duration"

	"podscrape/internal/app/ports"
	"podscrape/internal/infra/adapters/logger"
)

type forDecoding struct{}

// New returns a media metadata adapter implementing the ForDecoding
// port interface.
func New() ports.ForDecoding {
	return &forDecoding{}
}

func (d *forDecoding) Duration(ctx context.Context, data []byte) (float64, error) {
	l := logger.FromContext(ctx)
	mimetype.SetLimit(1024 * 1024)
	mtype := mimetype.Detect(data)
	l.Debug("Detected media content type", "contentType", mtype.String(), "size", len(data))
	switch {
	case mtype.Is("audio/mpeg"):
		return mp3Seconds(data)
	case mtype.Is("video/mp4"), mtype.Is("audio/mp4"), mtype.Is("audio/x-m4a"):
		return mp4Seconds(data)
	}
	return 0, fmt.Errorf("unsupported media content type %s", mtype.String())
}

// mp3Seconds spools the bytes to a temporary file as mp3duration
// reads from disk.
func mp3Seconds(data []byte) (float64, error) {
	f, err := os.CreateTemp("", "podscrape-*.mp3")
	if err != nil {
		return 0, err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	di, err := mp3duration.ReadFile(f.Name())
	if err != nil {
		return 0, err
	}
	return di.TimeDuration.Seconds(), nil
}

func mp4Seconds(data []byte) (float64, error) {
	m, err := mp4.OpenFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	if m == nil || m.Moov == nil || m.Moov.Mvhd == nil {
		return 0, fmt.Errorf("media does not contain a Moov Mvhd box (maybe not an mp4?)")
	}
	return (time.Duration(m.Moov.Mvhd.Duration) * time.Millisecond).Seconds(), nil
}

// configurator loads the scrape spec from a yaml file and the
// YouTube API credential from the process environment (optionally
// seeded from a .env file). Implements the ports.ForConfiguring
// interface.
package configurator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"podscrape/internal/app/model"
	"podscrape/internal/app/ports"
	"podscrape/internal/infra/adapters/logger"
)

const (
	defaultSpecfile   = "podscrape.yaml"
	defaultListingURL = "https://lexfridman.com/podcast/"
	defaultOutput     = "episodes.csv"
	defaultTimeout    = 10 * time.Second

	// APIKeyEnv holds the YouTube Data API key. Its absence degrades
	// the publish-timestamp resolver, nothing else.
	APIKeyEnv = "YOUTUBE_API_KEY"
)

// defaultAudioPrefixes encode the known historical hosting-prefix
// conventions. Override with the audioPrefixes list in the spec file
// when a new convention shows up.
var defaultAudioPrefixes = []string{
	"https://content.blubrry.com/takeituneasy/lex_ai_%s.mp3",
	"https://content.blubrry.com/takeituneasy/mit_ai_%s.mp3",
}

// configurator.New returns a file-based configurator that satisfies
// the ports.ForConfiguring port interface. An empty filename selects
// the default podscrape.yaml.
func New(specFilename string) ports.ForConfiguring {
	if specFilename == "" {
		specFilename = defaultSpecfile
	}
	return &forConfiguring{
		specFile: specFilename,
	}
}

type forConfiguring struct {
	specFile string
}

func (c *forConfiguring) Load(ctx context.Context) (*model.Spec, error) {
	l := logger.FromContext(ctx)

	var spec model.Spec
	f, err := os.Open(c.specFile)
	switch {
	case err == nil:
		err = yaml.NewDecoder(f).Decode(&spec)
		f.Close()
		if err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && c.specFile == defaultSpecfile:
		// Running without a spec file is fine, all settings have
		// defaults.
		l.Debug("No spec file found, using defaults", "specFile", c.specFile)
	default:
		return nil, err
	}

	// Set defaults
	if spec.ListingURL == "" {
		spec.ListingURL = defaultListingURL
	}
	if len(spec.AudioPrefixes) == 0 {
		spec.AudioPrefixes = defaultAudioPrefixes
	}
	if spec.Output == "" {
		spec.Output = defaultOutput
	}
	if spec.Timeout.Duration == 0 {
		spec.Timeout.Duration = defaultTimeout
	}

	if err := godotenv.Load(); err != nil {
		l.Debug("No .env file loaded", "cause", err)
	}
	spec.APIKey = os.Getenv(APIKeyEnv)
	if spec.APIKey == "" {
		l.Warn("YOUTUBE_API_KEY is not set, publish timestamps will be absent")
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

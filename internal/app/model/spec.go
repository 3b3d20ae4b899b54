package model

import (
	"fmt"
	"strings"
	"time"
)

// Spec is the main configuration aggregate for a scrape run, loaded
// from podscrape.yaml by the configurator adapter. The YouTube API
// key is taken from the environment and never serialized.
type Spec struct {
	// ListingURL is the podcast index page enumerating all episodes.
	ListingURL string `yaml:"listingURL"`
	// AudioPrefixes is the ordered list of hosting-prefix templates
	// used to guess an episode's audio asset URL from its thumbnail
	// filename. Each entry must contain exactly one %s verb which
	// receives the base filename token. Candidates are probed in
	// slice order, so append newly discovered conventions without
	// touching the locator itself.
	AudioPrefixes []string `yaml:"audioPrefixes"`
	// Output is the CSV file the collected records are written to.
	Output  string        `yaml:"output"`
	Timeout ScrapeTimeout `yaml:"timeout"`
	Aws     AwsConfig     `yaml:"aws"`

	APIKey string `yaml:"-"`
}

// Validate rejects a spec the batch cannot run with. Prefix templates
// are checked up front because a malformed one would silently disable
// part of the probing chain.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.ListingURL) == "" {
		return fmt.Errorf("listingURL must not be empty")
	}
	for _, p := range s.AudioPrefixes {
		if strings.Count(p, "%s") != 1 {
			return fmt.Errorf("audio prefix template %q must contain exactly one %%s", p)
		}
	}
	return nil
}

// This is only for the configuration, not implementing AWS handler logic.

type AwsConfig struct {
	Profile      string `yaml:"profile"`
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	StorageClass string `yaml:"storageClass,omitempty"`
}

// ScrapeTimeout bounds every outbound network call of a run. A single
// unresponsive host must never stall the whole batch.
type ScrapeTimeout struct {
	time.Duration
}

// Custom unmarshal function accepting time.ParseDuration strings
// (e.g. "10s", "1m30s"). An empty value means "use the default".
func (t *ScrapeTimeout) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	s := strings.TrimSpace(buf)
	if s == "" {
		t.Duration = 0
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("unmarshal error: timeout must be a duration such as 10s, not %q: %w", s, err)
	}
	if d < 0 {
		return fmt.Errorf("unmarshal error: timeout must not be negative")
	}
	t.Duration = d
	return nil
}

func (t ScrapeTimeout) MarshalYAML() (interface{}, error) {
	return t.Duration.String(), nil
}

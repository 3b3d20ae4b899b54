package ports

import (
	"context"
	"errors"
)

var (
	// ports.ErrNotFound is returned by adapters when a page, asset or
	// remote object does not exist upstream. Callers use it to tell
	// "not there" apart from transport failures, which only matters
	// for the log message.
	ErrNotFound error = errors.New("no such page, asset or key")
)

// ForFetching is the outbound HTTP port used for the listing index,
// episode detail pages, audio assets and liveness probes. Every call
// carries a bounded timeout via the adapter.
type ForFetching interface {
	// Fetch performs a GET against url and returns the response body.
	// Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) ([]byte, error)
	// Probe performs a lightweight existence check against url. It
	// returns nil exactly when the URL answers 200 OK; the body is
	// discarded.
	Probe(ctx context.Context, url string) error
}

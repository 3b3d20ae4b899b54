// fetcher is the default HTTP adapter for listing pages, episode
// pages, audio assets and liveness probes. Implements the
// ports.ForFetching interface. Every request is bounded by the
// configured timeout so a single unresponsive host cannot stall the
// batch.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"podscrape/internal/app/ports"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "podscrape/1.0 (+https://lexfridman.com/podcast/)"
	// Full episode audio files run to a few hundred MiB.
	maxBodyBytes = 512 << 20
)

type forFetching struct {
	client  *http.Client
	timeout time.Duration
}

// New returns an HTTP adapter implementing the ForFetching port
// interface. A non-positive timeout falls back to the default of 10
// seconds.
func New(timeout time.Duration) ports.ForFetching {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &forFetching{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     30 * time.Second,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("stopped after 10 redirects")
				}
				return nil
			},
		},
		timeout: timeout,
	}
}

func (f *forFetching) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

func (f *forFetching) Probe(ctx context.Context, url string) error {
	resp, err := f.get(ctx, url)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// get performs a GET with the adapter timeout and treats any non-200
// status as an error; 404 and 410 map to ports.ErrNotFound.
func (f *forFetching) get(ctx context.Context, url string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	resp, err := f.doGet(ctx, url)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			return nil, fmt.Errorf("%s: status %d: %w", url, resp.StatusCode, ports.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: status %d", url, resp.StatusCode)
	}
	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (f *forFetching) doGet(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")
	return f.client.Do(req)
}

// cancelReadCloser ties the request context's cancel function to the
// body so the timeout covers the whole read, not just the headers.
type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// PreloadConcurrency caps simultaneous fetches.
const PreloadConcurrency = 8

// LoadError is a single image that could not be fetched.
type LoadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("load %s: status %d", e.URL, e.StatusCode)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Preload fetches every URL and returns once all have loaded or the first one
// fails. The remaining fetches are cancelled on failure.
func Preload(ctx context.Context, client *http.Client, urls []string) error {
	if client == nil {
		client = http.DefaultClient
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(PreloadConcurrency)
	for _, u := range urls {
		g.Go(func() error {
			return fetch(ctx, client, u)
		})
	}
	return g.Wait()
}

// Check fetches every URL and reports each failure instead of stopping at the
// first one. The result is nil when everything loaded.
func Check(ctx context.Context, client *http.Client, urls []string) []*LoadError {
	if client == nil {
		client = http.DefaultClient
	}
	results := make([]error, len(urls))
	var g errgroup.Group
	g.SetLimit(PreloadConcurrency)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = fetch(ctx, client, u)
			return nil
		})
	}
	_ = g.Wait()

	var failed []*LoadError
	for _, err := range results {
		if err != nil {
			failed = append(failed, err.(*LoadError))
		}
	}
	return failed
}

func fetch(ctx context.Context, client *http.Client, u string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &LoadError{URL: u, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return &LoadError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &LoadError{URL: u, StatusCode: resp.StatusCode}
	}
	return nil
}

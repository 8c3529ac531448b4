// Package preview fetches LinkedIn profile pages and extracts social
// metadata from their Open Graph and Twitter meta tags.
//
// This is unauthenticated best-effort scraping of a third-party site; the
// remote markup can change the parse outcome at any time without notice, so
// results are never authoritative and any field may be absent.
package preview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// defaultRequestTimeout bounds the profile fetch; the reference behavior has
// no timeout but a hung upstream would otherwise hold the request open
const defaultRequestTimeout = 15 * time.Second

// browserHeaders make the fetch look like an ordinary browser visit to
// reduce the chance of being blocked by the origin
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// profilePattern matches a LinkedIn profile URL and nothing else
var profilePattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+/?$`)

// Profile holds metadata extracted from a profile page. Fields not found in
// the page markup are empty and omitted from JSON.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Fetcher retrieves and parses profile pages
type Fetcher struct {
	httpClient *http.Client
}

// Option configures the Fetcher
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client for the Fetcher
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// NewFetcher creates a profile preview fetcher
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// ValidURL reports whether a URL has the exact LinkedIn profile shape
func ValidURL(url string) bool {
	return profilePattern.MatchString(url)
}

// Fetch retrieves the profile page and extracts its social metadata. Any
// non-success upstream status is a failure.
func (f *Fetcher) Fetch(ctx context.Context, profileURL string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Profile{}, fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return Parse(string(body)), nil
}

package metagen

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body as text.
	// The context controls timeout and cancellation. Errors name the URL
	// and the underlying cause (status, timeout, network failure).
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any client resources.
	Close() error
}

package metagen

import "context"

// SitemapService discovers page URLs from a website's sitemap.
// Used to seed a bulk batch when the caller supplies a site instead of an
// explicit URL list.
type SitemapService interface {
	// DiscoverURLs finds page URLs starting from baseURL, consulting
	// robots.txt and sitemap.xml. Returns an empty slice (not nil) when no
	// sitemap is found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

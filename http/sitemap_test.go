package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	metagenhttp "github.com/brandforge/metagen/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("discovers URLs from sitemap.xml fallback", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/page1</loc></url>
  <url><loc>https://example.com/page2</loc></url>
</urlset>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		svc := metagenhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/page1", "https://example.com/page2"}, urls)
	})

	t.Run("follows Sitemap directive from robots.txt", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("User-agent: *\nSitemap: " + server.URL + "/custom-sitemap.xml\n"))
		})
		mux.HandleFunc("/custom-sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>https://example.com/only</loc></url></urlset>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		svc := metagenhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/only"}, urls)
	})

	t.Run("recurses into sitemap index and deduplicates", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<sitemapindex>
  <sitemap><loc>` + server.URL + `/sub1.xml</loc></sitemap>
  <sitemap><loc>` + server.URL + `/sub2.xml</loc></sitemap>
</sitemapindex>`))
		})
		mux.HandleFunc("/sub1.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>https://example.com/a</loc></url><url><loc>https://example.com/b</loc></url></urlset>`))
		})
		mux.HandleFunc("/sub2.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>https://example.com/b</loc></url><url><loc>https://example.com/c</loc></url></urlset>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		svc := metagenhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		svc := metagenhttp.NewSitemapService(server.Client())
		urls, err := svc.DiscoverURLs(context.Background(), server.URL)
		require.NoError(t, err)
		require.NotNil(t, urls)
		assert.Empty(t, urls)
	})
}

package trafilatura_test

import (
	"testing"

	"github.com/brandforge/metagen"
	"github.com/brandforge/metagen/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements metagen.Extractor at compile time.
var _ metagen.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content without boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Summer Sale - Acme</title></head>
<body>
<nav><a href="/">Home</a><a href="/shop">Shop</a></nav>
<article>
<h1>Summer Sale</h1>
<p>Every product in our summer collection is discounted this week only.</p>
<p>Free shipping applies to all orders above fifty dollars.</p>
</article>
<footer>Copyright 2026 Acme</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "summer collection is discounted")
		assert.Contains(t, result.Text, "Free shipping")
	})

	t.Run("extracts existing title and description", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Summer Sale - Acme</title>
<meta name="description" content="Our biggest sale of the year.">
</head>
<body>
<main>
<h1>Summer Sale</h1>
<p>Every product in our summer collection is discounted this week only.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Meta.Title)
		assert.Equal(t, "Our biggest sale of the year.", result.Meta.Description)
	})

	t.Run("collapses whitespace in extracted text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>First    paragraph
with  internal   spacing.</p>
<p>Second paragraph.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "  ")
		assert.NotContains(t, result.Text, "\n")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
	})
}

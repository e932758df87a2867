// Package trafilatura provides a main-content extractor for pages where
// navigation and footer boilerplate would pollute the generation prompt.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/brandforge/metagen"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements metagen.Extractor at compile time.
var _ metagen.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Unlike the goquery extractor it removes boilerplate (nav, footer, sidebar),
// trading completeness for prompt quality. OG fields are not populated;
// trafilatura already prefers og:title/og:description when building its
// metadata title and description.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content text.
func (e *Extractor) Extract(rawHTML string) (*metagen.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &metagen.ExtractResult{
		Text: strings.Join(strings.Fields(result.ContentText), " "),
		Meta: metagen.ExistingMetadata{
			Title:       result.Metadata.Title,
			Description: result.Metadata.Description,
		},
	}, nil
}

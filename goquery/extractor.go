// Package goquery provides an HTML extractor built on parsed DOM traversal.
// Parsing (rather than regex scanning) makes metadata matching insensitive to
// attribute order and handles entity decoding for free.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brandforge/metagen"
)

// Ensure Extractor implements metagen.Extractor at compile time.
var _ metagen.Extractor = (*Extractor)(nil)

// Extractor extracts plain text and existing metadata from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page text with script/style content removed and
// whitespace collapsed, plus any title/description/OG metadata present.
func (e *Extractor) Extract(rawHTML string) (*metagen.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, metagen.Errorf(metagen.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := extractMeta(doc)

	doc.Find("script, style").Remove()
	text := collapseWhitespace(doc.Text())

	return &metagen.ExtractResult{
		Text: text,
		Meta: meta,
	}, nil
}

// ExtractText strips markup from HTML and collapses whitespace. It is pure
// and idempotent: running it on its own output is a no-op.
func ExtractText(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return collapseWhitespace(rawHTML)
	}
	doc.Find("script, style").Remove()
	return collapseWhitespace(doc.Text())
}

// ExtractMeta returns the title, meta description, and OG metadata present
// in the HTML. Missing tags yield empty strings.
func ExtractMeta(rawHTML string) metagen.ExistingMetadata {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return metagen.ExistingMetadata{}
	}
	return extractMeta(doc)
}

func extractMeta(doc *goquery.Document) metagen.ExistingMetadata {
	return metagen.ExistingMetadata{
		Title:         strings.TrimSpace(doc.Find("title").First().Text()),
		Description:   metaContent(doc, "meta[name='description']"),
		OGTitle:       metaContent(doc, "meta[property='og:title']"),
		OGDescription: metaContent(doc, "meta[property='og:description']"),
	}
}

// metaContent returns the trimmed content attribute of the first match.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// collapseWhitespace reduces consecutive whitespace to single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package metagen

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Text is the page text with markup removed and whitespace collapsed.
	Text string

	// Meta is the metadata already present on the page. Missing tags are
	// empty strings.
	Meta ExistingMetadata
}

// Extractor extracts plain text and existing metadata from raw HTML.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

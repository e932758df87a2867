package mock

import "github.com/brandforge/metagen"

var _ metagen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of metagen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*metagen.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*metagen.ExtractResult, error) {
	return e.ExtractFn(html)
}

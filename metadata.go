package metagen

import (
	"context"
	"errors"
)

// MetadataRequest describes one bulk metadata generation batch.
// It is created per call and immutable for the duration of the request.
type MetadataRequest struct {
	BrandID    string   `json:"brandId"`
	URLs       []string `json:"urls"`
	SitemapURL string   `json:"sitemapUrl,omitempty"`
	Bulk       bool     `json:"isBulk,omitempty"`
}

// Validate returns an error if the request is missing required fields.
// A request must name a brand and carry either an explicit URL list or a
// sitemap URL to expand.
func (r *MetadataRequest) Validate() error {
	if r.BrandID == "" {
		return Errorf(EINVALID, "brand ID required")
	}
	if len(r.URLs) == 0 && r.SitemapURL == "" {
		return Errorf(EINVALID, "at least one URL required")
	}
	return nil
}

// ExistingMetadata holds metadata already present on a page.
// Missing tags are represented as empty strings, never omitted.
type ExistingMetadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
}

// GeneratedMetadata is the typed decode target for the generation service
// response. Fields the model omitted decode as empty strings and are filled
// in by the fallback chain.
type GeneratedMetadata struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
}

// Result statuses for MetadataResult.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MetadataResult is the per-URL outcome of a batch. One result is produced
// per input URL, in input order, whether generation succeeded or failed.
type MetadataResult struct {
	URL             string `json:"url"`
	PageTitle       string `json:"pageTitle"`
	MetaDescription string `json:"metaDescription"`
	OGTitle         string `json:"ogTitle"`
	OGDescription   string `json:"ogDescription"`
	Status          string `json:"status"`
	Error           string `json:"error,omitempty"`
}

// SuccessResult builds a success MetadataResult from generated metadata.
func SuccessResult(url string, gen *GeneratedMetadata) *MetadataResult {
	return &MetadataResult{
		URL:             url,
		PageTitle:       gen.Title,
		MetaDescription: gen.Description,
		OGTitle:         gen.OGTitle,
		OGDescription:   gen.OGDescription,
		Status:          StatusSuccess,
	}
}

// ErrorResult builds an error MetadataResult. The metadata fields stay empty
// so exports render a blank row for the operator to follow up on. The error
// message is shown verbatim: this is an operator tool and "HTTP 404 for ..."
// is the information they need.
func ErrorResult(url string, err error) *MetadataResult {
	var msg string
	var appErr *Error
	switch {
	case errors.As(err, &appErr):
		msg = appErr.Message
	case err != nil:
		msg = err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	return &MetadataResult{
		URL:    url,
		Status: StatusError,
		Error:  msg,
	}
}

// GenerateInput carries everything the generation service needs for one page.
type GenerateInput struct {
	URL string

	// Brand is optional; when present, brand name and tone of voice are
	// folded into the prompt.
	Brand *Brand

	// PageText is the extracted page text. Implementations truncate it to
	// their own context budget.
	PageText string

	// Existing is the metadata already present on the page, used both as
	// prompt context and as the fallback source for missing fields.
	Existing ExistingMetadata
}

// Generator produces SEO metadata for a single page via an external
// text-generation service.
type Generator interface {
	// Generate returns metadata with all four fields populated: missing
	// model output is filled from existing metadata, the URL path, or
	// placeholder text, in that order.
	Generate(ctx context.Context, input GenerateInput) (*GeneratedMetadata, error)
}

// Package gemini implements metagen.Generator using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/brandforge/metagen"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// maxPageTextChars bounds how much extracted page text goes into the prompt.
const maxPageTextChars = 1500

// Placeholder values used when neither the model nor the page supplies a field.
const (
	placeholderTitle       = "Untitled Page"
	placeholderDescription = "No description available"
)

// Ensure Generator implements metagen.Generator at compile time.
var _ metagen.Generator = (*Generator)(nil)

// Generator implements metagen.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate produces SEO metadata for a single page.
func (g *Generator) Generate(ctx context.Context, input metagen.GenerateInput) (*metagen.GeneratedMetadata, error) {
	if input.URL == "" {
		return nil, metagen.Errorf(metagen.EINVALID, "URL required")
	}

	prompt := BuildUserPrompt(input)
	config := BuildConfig()

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, metagen.Errorf(metagen.EINTERNAL, "generation service returned no content")
	}

	return ParseResponse(result.Text(), input)
}

// ParseResponse decodes the generation service response and applies the
// fallback chain. Exported so the decode path is testable without a client.
func ParseResponse(text string, input metagen.GenerateInput) (*metagen.GeneratedMetadata, error) {
	text = stripCodeFence(text)
	if strings.TrimSpace(text) == "" {
		return nil, metagen.Errorf(metagen.EINTERNAL, "generation service returned no content")
	}

	var gen metagen.GeneratedMetadata
	if err := json.Unmarshal([]byte(text), &gen); err != nil {
		return nil, metagen.Errorf(metagen.EINTERNAL,
			"invalid generation response: %v (raw: %s)", err, truncateForDiagnostics(text))
	}

	ApplyFallbacks(&gen, input)
	return &gen, nil
}

// ApplyFallbacks fills empty fields from existing metadata, the URL path,
// and finally placeholder text. Title and description are resolved first so
// the OG fields can fall back to them.
func ApplyFallbacks(gen *metagen.GeneratedMetadata, input metagen.GenerateInput) {
	if gen.Title == "" {
		gen.Title = input.Existing.Title
	}
	if gen.Title == "" {
		gen.Title = titleFromPath(input.URL)
	}
	if gen.Title == "" {
		gen.Title = placeholderTitle
	}

	if gen.Description == "" {
		gen.Description = input.Existing.Description
	}
	if gen.Description == "" {
		gen.Description = placeholderDescription
	}

	if gen.OGTitle == "" {
		gen.OGTitle = input.Existing.OGTitle
	}
	if gen.OGTitle == "" {
		gen.OGTitle = gen.Title
	}

	if gen.OGDescription == "" {
		gen.OGDescription = input.Existing.OGDescription
	}
	if gen.OGDescription == "" {
		gen.OGDescription = gen.Description
	}
}

// BuildConfig returns the GenerateContentConfig for metadata generation.
// The response is constrained to a JSON object.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an SEO copywriter. Given a web page, produce metadata as a JSON object " +
					`with exactly these keys: "title" (max 60 characters), "description" (max 160 characters), ` +
					`"ogTitle" (max 60 characters), "ogDescription" (max 200 characters). ` +
					"Write compelling, accurate copy grounded in the page content. Respond with the JSON object only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt for one page.
func BuildUserPrompt(input metagen.GenerateInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<url>%s</url>\n", input.URL)

	if input.Brand != nil {
		fmt.Fprintf(&sb, "<brand>%s</brand>\n", input.Brand.Name)
		if input.Brand.ToneOfVoice != "" {
			fmt.Fprintf(&sb, "<tone>%s</tone>\n", input.Brand.ToneOfVoice)
		}
	}

	if input.Existing.Title != "" {
		fmt.Fprintf(&sb, "<existing-title>%s</existing-title>\n", input.Existing.Title)
	}
	if input.Existing.Description != "" {
		fmt.Fprintf(&sb, "<existing-description>%s</existing-description>\n", input.Existing.Description)
	}
	if input.Existing.OGTitle != "" {
		fmt.Fprintf(&sb, "<existing-og-title>%s</existing-og-title>\n", input.Existing.OGTitle)
	}
	if input.Existing.OGDescription != "" {
		fmt.Fprintf(&sb, "<existing-og-description>%s</existing-og-description>\n", input.Existing.OGDescription)
	}

	text := input.PageText
	if len(text) > maxPageTextChars {
		text = text[:maxPageTextChars]
	}
	fmt.Fprintf(&sb, "<content>%s</content>", text)

	return sb.String()
}

// titleFromPath derives a human-readable title from the URL's final path
// segment, e.g. "/blog/summer-sale.html" -> "Summer Sale".
func titleFromPath(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return ""
	}

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}
	last = strings.NewReplacer("-", " ", "_", " ").Replace(last)

	words := strings.Fields(last)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// stripCodeFence removes a surrounding markdown code fence, which some models
// emit despite the JSON response constraint.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// truncateForDiagnostics caps raw response text included in error messages.
func truncateForDiagnostics(text string) string {
	const maxLen = 200
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}

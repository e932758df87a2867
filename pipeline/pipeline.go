// Package pipeline orchestrates bulk metadata generation. It expands the
// request into a URL list, runs fetch -> extract -> generate per URL behind
// a fixed-rate throttle, isolates per-URL failures, and reports progress.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/brandforge/metagen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultDelay is the fixed inter-request delay. A simple throttle to avoid
// hammering target sites and the generation service, not adaptive backoff.
const DefaultDelay = 500 * time.Millisecond

// DefaultGenerateTimeout bounds each generation-service call.
const DefaultGenerateTimeout = 30 * time.Second

// Pipeline orchestrates one metadata generation batch.
type Pipeline struct {
	Brands    metagen.BrandService
	Fetcher   metagen.Fetcher
	Extractor metagen.Extractor
	Generator metagen.Generator

	// Sitemaps is optional; required only for requests carrying a sitemap
	// URL instead of an explicit list.
	Sitemaps metagen.SitemapService

	// Throttle paces outbound fetches. Nil gets DefaultDelay pacing.
	Throttle *rate.Limiter

	// Concurrency is the worker width. Zero or negative means 1: URLs are
	// processed strictly one at a time.
	Concurrency int

	// GenerateTimeout bounds each generation call. Zero means
	// DefaultGenerateTimeout.
	GenerateTimeout time.Duration
}

// NewThrottle returns a limiter enforcing the given minimum interval between
// requests, with no bursting.
func NewThrottle(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Run processes the batch and returns one result per URL, in input order.
// Progress events are delivered through progress (which may be nil): one
// initial event, one "processing" and one result event per URL, and a final
// event with progress 100. A single URL's failure never aborts the batch;
// context cancellation does.
//
// Errors returned from Run occurred before or outside the per-URL loop
// (validation, brand lookup, sitemap expansion, cancellation).
func (p *Pipeline) Run(ctx context.Context, req *metagen.MetadataRequest, progress metagen.ProgressFunc) ([]*metagen.MetadataResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	brand, err := p.Brands.FindBrandByID(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	urls := req.URLs
	if len(urls) == 0 {
		urls, err = p.Sitemaps.DiscoverURLs(ctx, req.SitemapURL)
		if err != nil {
			return nil, fmt.Errorf("sitemap discovery: %w", err)
		}
		if len(urls) == 0 {
			return nil, metagen.Errorf(metagen.EINVALID, "sitemap %q yielded no URLs", req.SitemapURL)
		}
	}

	report := func(event metagen.ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	total := len(urls)
	report(metagen.ProgressEvent{
		Message:  fmt.Sprintf("Starting metadata generation for %d URLs", total),
		Progress: 0,
	})

	throttle := p.Throttle
	if throttle == nil {
		throttle = NewThrottle(DefaultDelay)
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*metagen.MetadataResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		if gctx.Err() != nil {
			break
		}
		i, url := i, url
		g.Go(func() error {
			report(metagen.ProgressEvent{
				Message:  fmt.Sprintf("Processing %s (%d of %d)", url, i+1, total),
				Progress: percent(int(completed.Load()), total),
			})

			result := p.processURL(gctx, brand, url, throttle)
			results[i] = result

			done := int(completed.Add(1))
			message := fmt.Sprintf("Generated metadata for %s", url)
			if result.Status == metagen.StatusError {
				message = fmt.Sprintf("Failed to process %s", url)
			}
			report(metagen.ProgressEvent{
				Message:  message,
				Progress: percent(done, total),
				Result:   result,
			})
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report(metagen.ProgressEvent{
		Message:  fmt.Sprintf("Completed metadata generation for %d URLs", total),
		Progress: 100,
	})

	return results, nil
}

// processURL runs fetch -> extract -> generate for a single URL. Failures
// come back as an error result, never as an error.
func (p *Pipeline) processURL(ctx context.Context, brand *metagen.Brand, url string, throttle *rate.Limiter) *metagen.MetadataResult {
	if err := throttle.Wait(ctx); err != nil {
		return metagen.ErrorResult(url, err)
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return metagen.ErrorResult(url, err)
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		return metagen.ErrorResult(url, err)
	}

	timeout := p.GenerateTimeout
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	gen, err := p.Generator.Generate(genCtx, metagen.GenerateInput{
		URL:      url,
		Brand:    brand,
		PageText: extracted.Text,
		Existing: extracted.Meta,
	})
	if err != nil {
		return metagen.ErrorResult(url, err)
	}

	return metagen.SuccessResult(url, gen)
}

// percent converts done/total to a rounded percentage.
func percent(done, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

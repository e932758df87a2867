package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/brandforge/metagen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.File != "" {
		fromFile, err := readURLFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 && c.Sitemap == "" {
		fmt.Fprintln(deps.Stderr, "error: provide page URLs, --file, or --sitemap")
		return metagen.Errorf(metagen.EINVALID, "at least one URL required")
	}

	req := &metagen.MetadataRequest{
		BrandID:    c.Brand,
		URLs:       urls,
		SitemapURL: c.Sitemap,
		Bulk:       len(urls) != 1,
	}

	progress := func(event metagen.ProgressEvent) {
		fmt.Fprintf(deps.Stderr, "[%3d%%] %s\n", event.Progress, event.Message)
	}

	results, err := deps.Pipeline.Run(deps.Ctx, req, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", metagen.ErrorMessage(err))
		return err
	}

	out := deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", c.Out, err)
		}
		defer f.Close()
		out = f
	}

	if err := metagen.WriteCSV(out, results); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stderr, "Wrote %d results to %s\n", len(results), c.Out)
	}
	return nil
}

// readURLFile reads URLs from a file, one per line. Blank lines and lines
// starting with '#' are skipped.
func readURLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

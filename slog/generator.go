package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/brandforge/metagen"
)

// Ensure LoggingGenerator implements metagen.Generator.
var _ metagen.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   metagen.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next metagen.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, input metagen.GenerateInput) (gen *metagen.GeneratedMetadata, err error) {
	defer func(begin time.Time) {
		g.logger.Info("metadata generation",
			"url", input.URL,
			"pageText", len(input.PageText),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, input)
}

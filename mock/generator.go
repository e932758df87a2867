package mock

import (
	"context"

	"github.com/brandforge/metagen"
)

var _ metagen.Generator = (*Generator)(nil)

// Generator is a mock implementation of metagen.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, input metagen.GenerateInput) (*metagen.GeneratedMetadata, error)
}

func (g *Generator) Generate(ctx context.Context, input metagen.GenerateInput) (*metagen.GeneratedMetadata, error) {
	return g.GenerateFn(ctx, input)
}

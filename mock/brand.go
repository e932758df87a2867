package mock

import (
	"context"

	"github.com/brandforge/metagen"
)

var _ metagen.BrandService = (*BrandService)(nil)

// BrandService is a mock implementation of metagen.BrandService.
type BrandService struct {
	CreateBrandFn   func(ctx context.Context, brand *metagen.Brand) error
	FindBrandByIDFn func(ctx context.Context, id string) (*metagen.Brand, error)
	FindBrandsFn    func(ctx context.Context, filter metagen.BrandFilter) ([]*metagen.Brand, error)
	UpdateBrandFn   func(ctx context.Context, id string, upd metagen.BrandUpdate) (*metagen.Brand, error)
	DeleteBrandFn   func(ctx context.Context, id string) error
}

func (s *BrandService) CreateBrand(ctx context.Context, brand *metagen.Brand) error {
	return s.CreateBrandFn(ctx, brand)
}

func (s *BrandService) FindBrandByID(ctx context.Context, id string) (*metagen.Brand, error) {
	return s.FindBrandByIDFn(ctx, id)
}

func (s *BrandService) FindBrands(ctx context.Context, filter metagen.BrandFilter) ([]*metagen.Brand, error) {
	return s.FindBrandsFn(ctx, filter)
}

func (s *BrandService) UpdateBrand(ctx context.Context, id string, upd metagen.BrandUpdate) (*metagen.Brand, error) {
	return s.UpdateBrandFn(ctx, id, upd)
}

func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	return s.DeleteBrandFn(ctx, id)
}

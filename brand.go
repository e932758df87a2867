package metagen

import (
	"context"
	"time"
)

// Brand represents a brand whose content the service generates metadata for.
// Brands scope batches: every metadata request names the brand it belongs to.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Website     string    `json:"website"`
	ToneOfVoice string    `json:"toneOfVoice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the brand contains invalid fields.
func (b *Brand) Validate() error {
	if b.Name == "" {
		return Errorf(EINVALID, "brand name required")
	}
	return nil
}

// BrandService represents a service for managing brands.
type BrandService interface {
	// CreateBrand creates a new brand.
	CreateBrand(ctx context.Context, brand *Brand) error

	// FindBrandByID retrieves a brand by ID.
	// Returns ENOTFOUND if brand does not exist.
	FindBrandByID(ctx context.Context, id string) (*Brand, error)

	// FindBrands retrieves brands matching the filter.
	FindBrands(ctx context.Context, filter BrandFilter) ([]*Brand, error)

	// UpdateBrand updates an existing brand.
	// Returns ENOTFOUND if brand does not exist.
	UpdateBrand(ctx context.Context, id string, upd BrandUpdate) (*Brand, error)

	// DeleteBrand permanently removes a brand.
	// Returns ENOTFOUND if brand does not exist.
	DeleteBrand(ctx context.Context, id string) error
}

// BrandFilter represents a filter for FindBrands.
type BrandFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// BrandUpdate represents fields that can be updated on a brand.
type BrandUpdate struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	ToneOfVoice *string `json:"toneOfVoice"`
}

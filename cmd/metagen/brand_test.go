package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/brandforge/metagen"
	main "github.com/brandforge/metagen/cmd/metagen"
	"github.com/brandforge/metagen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates brand and prints its ID", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			CreateBrandFn: func(_ context.Context, brand *metagen.Brand) error {
				assert.Equal(t, "Acme", brand.Name)
				assert.Equal(t, "https://acme.example", brand.Website)
				assert.Equal(t, "friendly", brand.ToneOfVoice)
				brand.ID = "brand-123"
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandAddCmd{Name: "Acme", Website: "https://acme.example", Tone: "friendly"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "brand-123")
	})

	t.Run("returns error when creation fails", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			CreateBrandFn: func(_ context.Context, _ *metagen.Brand) error {
				return metagen.Errorf(metagen.EINVALID, "brand name required")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandAddCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "brand name required")
	})
}

func TestBrandListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists brands with ID, name, and website", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, _ metagen.BrandFilter) ([]*metagen.Brand, error) {
				return []*metagen.Brand{
					{ID: "brand-123", Name: "Acme", Website: "https://acme.example"},
					{ID: "brand-456", Name: "Globex", Website: "https://globex.example"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "brand-123")
		assert.Contains(t, output, "Acme")
		assert.Contains(t, output, "https://globex.example")
	})

	t.Run("shows helpful message when no brands exist", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, _ metagen.BrandFilter) ([]*metagen.Brand, error) {
				return []*metagen.Brand{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No brands")
	})

	t.Run("returns error when FindBrands fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		brands := &mock.BrandService{
			FindBrandsFn: func(_ context.Context, _ metagen.BrandFilter) ([]*metagen.Brand, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestBrandDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes brand by ID", func(t *testing.T) {
		t.Parallel()

		var deleted string
		brands := &mock.BrandService{
			DeleteBrandFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandDeleteCmd{ID: "brand-123"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "brand-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted brand brand-123")
	})

	t.Run("returns error for unknown brand", func(t *testing.T) {
		t.Parallel()

		brands := &mock.BrandService{
			DeleteBrandFn: func(_ context.Context, _ string) error {
				return metagen.Errorf(metagen.ENOTFOUND, "brand not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Brands: brands,
		}

		cmd := &main.BrandDeleteCmd{ID: "nope"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "brand not found")
	})
}

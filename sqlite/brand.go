package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/brandforge/metagen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ metagen.BrandService = (*BrandService)(nil)

// BrandService implements metagen.BrandService using SQLite.
type BrandService struct {
	db *DB
}

// NewBrandService creates a new BrandService.
func NewBrandService(db *DB) *BrandService {
	return &BrandService{db: db}
}

// CreateBrand creates a new brand.
func (s *BrandService) CreateBrand(ctx context.Context, brand *metagen.Brand) error {
	if err := brand.Validate(); err != nil {
		return err
	}

	brand.ID = uuid.New().String()
	now := time.Now().UTC()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO brands (id, name, website, tone_of_voice, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, brand.ID, brand.Name, brand.Website, brand.ToneOfVoice,
		brand.CreatedAt.Format(time.RFC3339), brand.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindBrandByID retrieves a brand by ID.
func (s *BrandService) FindBrandByID(ctx context.Context, id string) (*metagen.Brand, error) {
	var brand metagen.Brand
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, website, tone_of_voice, created_at, updated_at
		FROM brands
		WHERE id = ?
	`, id).Scan(&brand.ID, &brand.Name, &brand.Website, &brand.ToneOfVoice,
		&createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, metagen.Errorf(metagen.ENOTFOUND, "brand not found")
	}
	if err != nil {
		return nil, err
	}

	if brand.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if brand.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &brand, nil
}

// FindBrands retrieves brands matching the filter.
func (s *BrandService) FindBrands(ctx context.Context, filter metagen.BrandFilter) ([]*metagen.Brand, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, website, tone_of_voice, created_at, updated_at FROM brands WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*metagen.Brand
	for rows.Next() {
		var brand metagen.Brand
		var createdAt, updatedAt string

		if err := rows.Scan(&brand.ID, &brand.Name, &brand.Website, &brand.ToneOfVoice,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if brand.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if brand.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		brands = append(brands, &brand)
	}

	return brands, rows.Err()
}

// UpdateBrand updates an existing brand.
func (s *BrandService) UpdateBrand(ctx context.Context, id string, upd metagen.BrandUpdate) (*metagen.Brand, error) {
	brand, err := s.FindBrandByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		brand.Name = *upd.Name
	}
	if upd.Website != nil {
		brand.Website = *upd.Website
	}
	if upd.ToneOfVoice != nil {
		brand.ToneOfVoice = *upd.ToneOfVoice
	}

	if err := brand.Validate(); err != nil {
		return nil, err
	}

	brand.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE brands
		SET name = ?, website = ?, tone_of_voice = ?, updated_at = ?
		WHERE id = ?
	`, brand.Name, brand.Website, brand.ToneOfVoice,
		brand.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return brand, nil
}

// DeleteBrand permanently removes a brand.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM brands WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return metagen.Errorf(metagen.ENOTFOUND, "brand not found")
	}

	return nil
}

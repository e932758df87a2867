package main

import (
	"fmt"

	"github.com/brandforge/metagen"
)

// Run executes the brand add command.
func (c *BrandAddCmd) Run(deps *Dependencies) error {
	brand := &metagen.Brand{
		Name:        c.Name,
		Website:     c.Website,
		ToneOfVoice: c.Tone,
	}

	if err := deps.Brands.CreateBrand(deps.Ctx, brand); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", metagen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added brand %q (%s)\n", c.Name, brand.ID)
	return nil
}

// Run executes the brand list command.
func (c *BrandListCmd) Run(deps *Dependencies) error {
	brands, err := deps.Brands.FindBrands(deps.Ctx, metagen.BrandFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", metagen.ErrorMessage(err))
		return err
	}

	if len(brands) == 0 {
		fmt.Fprintln(deps.Stdout, "No brands found. Use 'metagen brand add' to create one.")
		return nil
	}

	for _, b := range brands {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", b.ID, b.Name, b.Website)
	}

	return nil
}

// Run executes the brand delete command.
func (c *BrandDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Brands.DeleteBrand(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", metagen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted brand %s\n", c.ID)
	return nil
}

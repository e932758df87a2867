package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/brandforge/metagen"
	"github.com/brandforge/metagen/pipeline"
	"github.com/brandforge/metagen/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Brands   metagen.BrandService
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve    ServeCmd    `cmd:"" help:"Start the HTTP API server"`
	Generate GenerateCmd `cmd:"" help:"Generate metadata for URLs and export CSV"`
	Brand    BrandCmd    `cmd:"" help:"Manage brands"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `default:":8080" env:"METAGEN_ADDR" help:"Listen address"`
	Extractor string `default:"goquery" enum:"goquery,trafilatura" help:"Page text extractor"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Brand       string        `arg:"" help:"Brand ID"`
	URLs        []string      `arg:"" optional:"" help:"Page URLs to process"`
	File        string        `short:"f" help:"Read page URLs from a file, one per line"`
	Sitemap     string        `short:"s" help:"Discover URLs from this site's sitemap instead"`
	Out         string        `short:"o" help:"Write CSV to file instead of stdout"`
	Extractor   string        `default:"goquery" enum:"goquery,trafilatura" help:"Page text extractor"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Delay       time.Duration `default:"500ms" help:"Minimum delay between fetches"`
}

// BrandCmd groups brand management subcommands.
type BrandCmd struct {
	Add    BrandAddCmd    `cmd:"" help:"Create a brand"`
	List   BrandListCmd   `cmd:"" help:"List brands"`
	Delete BrandDeleteCmd `cmd:"" help:"Delete a brand"`
}

// BrandAddCmd is the "brand add" subcommand.
type BrandAddCmd struct {
	Name    string `arg:"" help:"Brand name"`
	Website string `short:"w" help:"Brand website URL"`
	Tone    string `short:"t" help:"Tone of voice for generated copy"`
}

// BrandListCmd is the "brand list" subcommand.
type BrandListCmd struct{}

// BrandDeleteCmd is the "brand delete" subcommand.
type BrandDeleteCmd struct {
	ID string `arg:"" help:"Brand ID"`
}

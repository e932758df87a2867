package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/brandforge/metagen"
	"github.com/brandforge/metagen/gemini"
	"github.com/brandforge/metagen/goquery"
	metagenhttp "github.com/brandforge/metagen/http"
	"github.com/brandforge/metagen/pipeline"
	metagenslog "github.com/brandforge/metagen/slog"
	"github.com/brandforge/metagen/sqlite"
	"github.com/brandforge/metagen/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BrandService metagen.BrandService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("metagen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'metagen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set METAGEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BrandService = sqlite.NewBrandService(m.DB)
	deps.DB = m.DB
	deps.Brands = m.BrandService

	// The serve and generate commands need the full fetch/extract/generate
	// pipeline; brand management only needs the database.
	if cmd == "serve" || cmd == "generate" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		extractorMode := cli.Serve.Extractor
		concurrency := 1
		delay := pipeline.DefaultDelay
		if cmd == "generate" {
			extractorMode = cli.Generate.Extractor
			concurrency = cli.Generate.Concurrency
			delay = cli.Generate.Delay
		}

		var extractor metagen.Extractor
		if extractorMode == "trafilatura" {
			extractor = trafilatura.NewExtractor()
		} else {
			extractor = goquery.NewExtractor()
		}

		deps.Pipeline = &pipeline.Pipeline{
			Brands:      m.BrandService,
			Fetcher:     metagenslog.NewLoggingFetcher(metagenhttp.NewFetcher(), deps.Logger),
			Extractor:   extractor,
			Generator:   metagenslog.NewLoggingGenerator(gemini.NewGenerator(client, gemini.DefaultModel), deps.Logger),
			Sitemaps:    metagenslog.NewLoggingSitemapService(metagenhttp.NewSitemapService(nil), deps.Logger),
			Throttle:    pipeline.NewThrottle(delay),
			Concurrency: concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("METAGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "metagen.db"
	}
	dir := filepath.Join(home, ".metagen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "metagen.db")
}

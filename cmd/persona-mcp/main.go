package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	persona "github.com/kvrancic/persona-mcp"
	"github.com/kvrancic/persona-mcp/compose"
	"github.com/kvrancic/persona-mcp/fs"
	"github.com/kvrancic/persona-mcp/genai"
	"github.com/kvrancic/persona-mcp/googlecse"
	"github.com/kvrancic/persona-mcp/goquery"
	"github.com/kvrancic/persona-mcp/htmltomarkdown"
	personahttp "github.com/kvrancic/persona-mcp/http"
	"github.com/kvrancic/persona-mcp/ingest"
	"github.com/kvrancic/persona-mcp/readability"
	"github.com/kvrancic/persona-mcp/retrieve"
	"github.com/kvrancic/persona-mcp/rod"
	"github.com/kvrancic/persona-mcp/scrape"
	"github.com/kvrancic/persona-mcp/serper"
	personaslog "github.com/kvrancic/persona-mcp/slog"
	"github.com/kvrancic/persona-mcp/trafilatura"
	gogenai "google.golang.org/genai"
)

// scrapesPerSecondPerDomain paces the ingestion fan-out so a run never
// hammers one site.
const scrapesPerSecondPerDomain = 1.0

func main() {
	// Missing .env is fine; the environment may carry the keys.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// DataDir is where knowledge bases live. Set before calling Run().
	DataDir string

	// Store is the content store backing all commands. Populated by Run().
	Store persona.ContentStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataDir: defaultDataDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("persona-mcp"),
		kong.Description("Per-person knowledge bases with grounded first-person answers."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'persona-mcp --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	m.Store = fs.NewStore(m.DataDir)
	deps.Store = m.Store
	if logger != nil {
		deps.Store = personaslog.NewLoggingContentStore(deps.Store, logger)
	}

	needIngest := cmd == "init" || cmd == "serve"
	needCompose := cmd == "ask" || cmd == "serve"

	if needIngest {
		search, err := buildSearch(ctx, cli, stderr)
		if err != nil {
			return err
		}

		fetcher, err := buildFetcher(cli, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		scraper := buildScraper(cli, fetcher)
		if logger != nil {
			search = personaslog.NewLoggingSearchService(search, logger)
			scraper = personaslog.NewLoggingScraper(scraper, logger)
		}

		deps.Ingestor = &ingest.Ingestor{
			Search:  search,
			Scraper: scraper,
			Store:   deps.Store,
			Limiter: ingest.NewDomainLimiter(scrapesPerSecondPerDomain),
			Workers: cli.Init.Concurrency,
		}
	}

	if needCompose {
		generator, err := buildGenerator(ctx, stderr)
		if err != nil {
			return err
		}
		if logger != nil {
			generator = personaslog.NewLoggingGenerator(generator, logger)
		}

		deps.Composer = &compose.Composer{
			Retriever: retrieve.NewEngine(deps.Store),
			Generator: generator,
			Store:     deps.Store,
		}
	}

	return kongCtx.Run(deps)
}

// buildSearch selects the web search backend from the --search flag and
// reads its credentials from the environment.
func buildSearch(ctx context.Context, cli *CLI, stderr io.Writer) (persona.SearchService, error) {
	switch cli.Search {
	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		engineID := os.Getenv("GOOGLE_CSE_ID")
		if apiKey == "" || engineID == "" {
			fmt.Fprintln(stderr, "Hint: create a key and engine at https://programmablesearchengine.google.com, or use --search=serper")
			return nil, persona.Errorf(persona.EINVALID, "GOOGLE_API_KEY and GOOGLE_CSE_ID must be set for --search=google")
		}
		return googlecse.NewClient(ctx, apiKey, engineID)
	default:
		apiKey := os.Getenv("SERPER_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: get a Serper API key at https://serper.dev")
			return nil, persona.Errorf(persona.EINVALID, "SERPER_API_KEY not set")
		}
		return serper.NewClient(apiKey), nil
	}
}

// buildFetcher returns the page fetcher: plain HTTP by default, headless
// Chrome with --render.
func buildFetcher(cli *CLI, stderr io.Writer) (persona.Fetcher, error) {
	if !cli.Render {
		return personahttp.NewFetcher(), nil
	}
	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// buildScraper assembles the scrape pipeline around the fetcher.
func buildScraper(cli *CLI, fetcher persona.Fetcher) persona.Scraper {
	var extractor persona.Extractor
	if cli.Extractor == "readability" {
		extractor = readability.NewExtractor()
	} else {
		extractor = trafilatura.NewExtractor()
	}

	return &scrape.Pipeline{
		Fetcher:   fetcher,
		Detector:  goquery.NewDetector(),
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
	}
}

// buildGenerator connects to the Gemini API.
func buildGenerator(ctx context.Context, stderr io.Writer) (persona.Generator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "Hint: get an API key at https://aistudio.google.com/apikey")
		return nil, persona.Errorf(persona.EINVALID, "GEMINI_API_KEY not set")
	}

	client, err := gogenai.NewClient(ctx, &gogenai.ClientConfig{
		APIKey:  apiKey,
		Backend: gogenai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return genai.NewGenerator(client), nil
}

func defaultDataDir() string {
	if dir := os.Getenv("PERSONA_MCP_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".persona-mcp")
}

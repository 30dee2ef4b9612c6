package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/fwojciec/deptbrain"
	"github.com/fwojciec/deptbrain/fs"
	"github.com/fwojciec/deptbrain/fuzzy"
	"github.com/fwojciec/deptbrain/gemini"
	"github.com/fwojciec/deptbrain/openai"
	deptbrainslog "github.com/fwojciec/deptbrain/slog"
	"github.com/fwojciec/deptbrain/sqlite"
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
	// Config overrides environment configuration when set. Used by tests.
	Config *deptbrain.Config

	// SQLite database backing the vector store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	// A .env file is optional.
	_ = godotenv.Load()

	var config deptbrain.Config
	if m.Config != nil {
		config = *m.Config
	} else {
		var err error
		config, err = deptbrain.ConfigFromEnv()
		if err != nil {
			return err
		}
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(stderr, nil))

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: config,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("deptbrain"),
		kong.Description("Answers natural-language questions about a university department."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'deptbrain --help' to see available commands")
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

	faculty, err := fs.LoadFaculty(config.FacultyFile)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set FACULTY_FILE to point at the faculty dataset\n")
		return err
	}
	notes, err := fs.LoadNotes(config.NotesFile)
	if err != nil {
		return err
	}
	catalog := deptbrain.NewCatalog(faculty, notes)

	lookup := fuzzy.NewLookup(catalog)
	classifier := deptbrain.NewClassifier(catalog, lookup)

	// Without a provider credential the service still answers structured
	// questions; RAG questions get the fixed unknown message.
	var embedder deptbrain.EmbeddingProvider
	var generation deptbrain.GenerationProvider
	if config.APIKey() != "" {
		switch config.Provider {
		case deptbrain.ProviderGemini:
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  config.GeminiAPIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			provider := gemini.NewProvider(client, config.LLMModel, config.EmbeddingModel)
			embedder, generation = provider, provider
		default:
			provider, err := openai.NewProvider(config.OpenAIAPIKey, config.LLMModel, config.EmbeddingModel)
			if err != nil {
				return err
			}
			embedder, generation = provider, provider
		}
	} else {
		logger.Warn("no provider API key configured, answering from structured data only",
			"provider", config.Provider)
	}

	if dir := filepath.Dir(config.VectorDBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create vector store directory %q: %w", dir, err)
		}
	}
	m.DB = sqlite.NewDB(config.VectorDBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VECTOR_DB_PATH to use a different database path\n")
		return fmt.Errorf("failed to open vector store at %q: %w", config.VectorDBPath, err)
	}
	defer m.Close()

	retrieval := deptbrain.NewRetrieval(embedder, sqlite.NewChunkService(m.DB))
	generator := deptbrain.NewGenerator(generation)
	router := deptbrain.NewRouter(classifier, lookup, retrieval, generator, config)

	deps.Catalog = catalog
	deps.Retrieval = retrieval
	deps.Generator = generator
	deps.Answerer = deptbrainslog.NewLoggingAnswerer(router, logger)

	return kongCtx.Run(deps)
}

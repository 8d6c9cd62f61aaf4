package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/taxagent/taxagent"
	"github.com/taxagent/taxagent/bloom"
	"github.com/taxagent/taxagent/convert"
	"github.com/taxagent/taxagent/etree"
	"github.com/taxagent/taxagent/format"
	"github.com/taxagent/taxagent/fs"
	"github.com/taxagent/taxagent/gemini"
	"github.com/taxagent/taxagent/goldmark"
	"github.com/taxagent/taxagent/goquery"
	"github.com/taxagent/taxagent/ollama"
	taxslog "github.com/taxagent/taxagent/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Optional .env for OLLAMA_HOST / GEMINI_API_KEY.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("taxagent"),
		kong.Description("Convert the US Tax Code to Markdown and ask questions about it."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"ollama_model": ollama.DefaultModel},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'taxagent --help' to see available commands")
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

	// Wire command-specific dependencies based on command.
	switch cmd {
	case "convert":
		deps.Converter = &convert.Converter{
			Parser:     taxslog.NewLoggingParser(etree.NewParser(goquery.NewTableConverter()), logger),
			Writer:     fs.NewWriter(),
			Logger:     logger,
			HashLookup: fs.ReadArtifactHash,
		}

	case "format":
		client := ollama.NewClient(os.Getenv("OLLAMA_HOST"), cli.Format.Model)
		deps.Runner = &format.Runner{
			Formatter:    ollama.NewFormatter(client),
			Writer:       fs.NewWriter(),
			Logger:       logger,
			MaxChunkSize: cli.Format.ChunkSize,
		}

	case "ask":
		deps.Splitter = goldmark.NewSplitter()
		deps.NewIndex = func(sections []taxagent.Section) taxagent.Index {
			return bloom.NewIndex(sections)
		}

		var asker taxagent.Asker
		if cli.Ask.Backend == "gemini" {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			asker = gemini.NewAsker(client, cli.Ask.Model)
		} else {
			asker = ollama.NewAsker(ollama.NewClient(os.Getenv("OLLAMA_HOST"), cli.Ask.Model))
		}
		deps.Asker = taxslog.NewLoggingAsker(asker, logger)
	}

	return kongCtx.Run(deps)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bulletin"
	"github.com/fwojciec/bulletin/extract"
	"github.com/fwojciec/bulletin/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP and browser fetchers when set.
	Fetcher bulletin.Fetcher

	// RetryDelays overrides the fetch backoff schedule when non-nil.
	RetryDelays []time.Duration

	// RequestsPerSecond bounds requests per domain. Zero disables limiting.
	RequestsPerSecond float64
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		RequestsPerSecond: 1.0,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Fetcher:     m.Fetcher,
		RetryDelays: m.RetryDelays,
		RateLimit:   m.RequestsPerSecond,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bulletin"),
		kong.Description("Collect Korean public bulletin pages into structured records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bulletin --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config, err = loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", bulletin.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

// loadConfig returns the built-in configuration, extended by the file at
// path when one is given.
func loadConfig(path string) (*bulletin.Config, error) {
	base := bulletin.Config{
		Rules: extract.DefaultRules(),
		Sites: DefaultSites(),
	}
	if path == "" {
		return &base, nil
	}
	return yaml.LoadConfig(path, base)
}

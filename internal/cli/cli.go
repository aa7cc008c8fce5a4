package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/picks-scraper/internal/browser"
	"github.com/pfrederiksen/picks-scraper/internal/logger"
	"github.com/pfrederiksen/picks-scraper/internal/scraper"
	"github.com/pfrederiksen/picks-scraper/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// scrapeOptions holds the root command flags
type scrapeOptions struct {
	url         string
	output      string
	waitTimeout time.Duration
	settle      time.Duration
	limit       int
	userAgent   string
	headless    bool
	chromePath  string
	format      string
	logLevel    string
	verbose     bool
}

// launcherFunc builds the browser launcher for a run
type launcherFunc func(opts browser.Options) scraper.Launcher

func chromeLauncher(opts browser.Options) scraper.Launcher {
	return func(ctx context.Context) (scraper.Session, error) {
		session, err := browser.Launch(ctx, opts)
		if err != nil {
			return nil, err
		}
		return session, nil
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(chromeLauncher)
}

func newRootCmd(launcher launcherFunc) *cobra.Command {
	opts := &scrapeOptions{}
	defaults := scraper.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "picks-scraper",
		Short: "Scrape the projection board into a picks JSON file",
		Long: `Scrapes player prop projections from the projection board with a headless
browser and overwrites a JSON file with the result. Confidence, pick and EV
values are hash-derived placeholders, not a model.

The file always holds valid JSON: a success document with picks, or an error
document describing why the run failed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd, opts, launcher)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", defaults.URL, "Board URL to scrape")
	cmd.Flags().StringVar(&opts.output, "output", storage.DefaultPath, "Result file, overwritten every run")
	cmd.Flags().DurationVar(&opts.waitTimeout, "wait-timeout", defaults.WaitTimeout, "Timeout for each page wait")
	cmd.Flags().DurationVar(&opts.settle, "settle", defaults.Settle, "Pause after cards appear before reading the page")
	cmd.Flags().IntVar(&opts.limit, "limit", defaults.Limit, "Maximum number of cards to read")
	cmd.Flags().StringVar(&opts.userAgent, "user-agent", browser.UserAgent, "Browser user agent")
	cmd.Flags().BoolVar(&opts.headless, "headless", true, "Run Chrome headless")
	cmd.Flags().StringVar(&opts.chromePath, "chrome-path", "", "Chrome binary (default: auto-detect)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Summary format: text or json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "List picks and log run metrics")

	cmd.AddCommand(newAnnounceCmd())

	return cmd
}

// runScrape performs one scrape and persists the result.
// A failed scrape is not a command error; only a failure to write the file is.
func runScrape(cmd *cobra.Command, opts *scrapeOptions, launcher launcherFunc) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	cfg := scraper.DefaultConfig()
	cfg.URL = opts.url
	cfg.WaitTimeout = opts.waitTimeout
	cfg.Settle = opts.settle
	cfg.Limit = opts.limit

	browserOpts := browser.DefaultOptions()
	browserOpts.Headless = opts.headless
	browserOpts.UserAgent = opts.userAgent
	browserOpts.ExecPath = opts.chromePath

	store, err := storage.New(opts.output)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc, err := scraper.New(cfg, launcher(browserOpts), log)
	if err != nil {
		return err
	}

	result := sc.Run(cmd.Context())

	if err := store.Save(result); err != nil {
		log.Error("Saving result failed", logger.Fields{"path": store.Path()}, err)
		return fmt.Errorf("saving result: %w", err)
	}
	log.Info("Saved result", logger.Fields{"path": store.Path(), "status": string(result.Status)})

	if opts.verbose {
		log.Info("Run metrics", logger.MetricsSnapshot())
	}

	summary := NewRunSummary(result, store.Path())
	if err := WriteSummary(cmd.OutOrStdout(), summary, result.Picks, format, opts.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}

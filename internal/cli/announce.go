package cli

import (
	"fmt"

	"github.com/pfrederiksen/picks-scraper/internal/notifier"
	"github.com/pfrederiksen/picks-scraper/internal/pick"
	"github.com/pfrederiksen/picks-scraper/internal/storage"
	"github.com/spf13/cobra"
)

// DefaultMaxPosts caps how many picks announce posts per run
const DefaultMaxPosts = 5

type announceOptions struct {
	input    string
	dryRun   bool
	maxPosts int
}

// newTwitterNotifier is replaced in tests
var newTwitterNotifier = func() (notifier.Notifier, error) {
	return notifier.NewTwitterNotifier(notifier.CredentialsFromEnv())
}

func newAnnounceCmd() *cobra.Command {
	opts := &announceOptions{}

	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Post the highest-confidence picks from the last scrape",
		Long: `Reads the result file written by the last scrape and posts the top picks,
highest confidence first. Requires TWITTER_API_KEY, TWITTER_API_SECRET,
TWITTER_ACCESS_TOKEN and TWITTER_ACCESS_SECRET unless --dry-run is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnounce(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", storage.DefaultPath, "Result file to read")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print posts without publishing")
	cmd.Flags().IntVar(&opts.maxPosts, "max-posts", DefaultMaxPosts, "Maximum number of picks to post")

	return cmd
}

func runAnnounce(cmd *cobra.Command, opts *announceOptions) error {
	if opts.maxPosts <= 0 {
		return fmt.Errorf("--max-posts must be positive, got %d", opts.maxPosts)
	}

	store, err := storage.New(opts.input)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	result, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading result: %w", err)
	}

	out := cmd.OutOrStdout()

	if result.Status == pick.StatusError {
		fmt.Fprintf(out, "Last scrape failed (%s); nothing to announce\n", result.Error)
		return nil
	}
	if len(result.Picks) == 0 {
		fmt.Fprintln(out, "No picks to announce")
		return nil
	}

	top := pick.Top(result.Picks, opts.maxPosts)

	var n notifier.Notifier
	if opts.dryRun {
		n = notifier.NewDryRunNotifier(out)
		fmt.Fprintf(out, "DRY RUN MODE - Would post %d picks:\n\n", len(top))
	} else {
		n, err = newTwitterNotifier()
		if err != nil {
			return fmt.Errorf("initializing Twitter client: %w", err)
		}
	}

	if err := n.Notify(top); err != nil {
		return fmt.Errorf("posting picks: %w", err)
	}

	if !opts.dryRun {
		fmt.Fprintf(out, "Successfully posted %d picks\n", len(top))
	}
	return nil
}

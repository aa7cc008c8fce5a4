package notifier

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// DryRunNotifier prints what would be posted without posting
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints each post
func (n *DryRunNotifier) Notify(picks []pick.Pick) error {
	for i, p := range picks {
		post := FormatPost(p)
		fmt.Fprintf(n.out, "--- Post %d/%d ---\n", i+1, len(picks))
		fmt.Fprintln(n.out, post)
		fmt.Fprintf(n.out, "\n(Length: %d characters)\n\n", utf8.RuneCountInString(post))
	}
	return nil
}

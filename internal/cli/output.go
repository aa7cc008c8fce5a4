package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunSummary describes a finished scrape
type RunSummary struct {
	Status     pick.Status `json:"status"`
	TotalPicks int         `json:"total_picks"`
	OutputPath string      `json:"output_path"`
	Error      string      `json:"error,omitempty"`
}

// NewRunSummary summarizes result as written to path
func NewRunSummary(result *pick.Result, path string) *RunSummary {
	return &RunSummary{
		Status:     result.Status,
		TotalPicks: len(result.Picks),
		OutputPath: path,
		Error:      result.Error,
	}
}

// WriteSummary writes the summary in the specified format.
// In verbose text mode every pick is listed.
func WriteSummary(w io.Writer, summary *RunSummary, picks []pick.Pick, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	case FormatText:
		return writeText(w, summary, picks, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeText(w io.Writer, summary *RunSummary, picks []pick.Pick, verbose bool) error {
	if summary.Status == pick.StatusError {
		fmt.Fprintf(w, "Scrape failed: %s\n", summary.Error)
		fmt.Fprintf(w, "Error result written to %s\n", summary.OutputPath)
		return nil
	}

	fmt.Fprintf(w, "Successfully scraped %d picks\n", summary.TotalPicks)
	if verbose {
		for _, p := range picks {
			fmt.Fprintf(w, "  %-24s %-18s %5s %g (confidence %d, ev %.1f)\n",
				p.Player, p.StatType, p.Pick, p.PropLine, p.Confidence, p.EV)
		}
	}
	fmt.Fprintf(w, "Result written to %s\n", summary.OutputPath)
	return nil
}

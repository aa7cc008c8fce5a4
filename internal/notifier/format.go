package notifier

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// MaxPostLength is the Twitter character limit
const MaxPostLength = 280

// FormatPost renders a pick as a post of at most MaxPostLength characters
func FormatPost(p pick.Pick) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 %s %s %s %g\n\n", p.Player, p.StatType, p.Pick, p.PropLine)
	fmt.Fprintf(&b, "Confidence: %d%%\n", p.Confidence)
	fmt.Fprintf(&b, "EV: %+.1f\n", p.EV)
	if p.Sport != "" {
		fmt.Fprintf(&b, "\n#%s #PlayerProps", p.Sport)
	} else {
		b.WriteString("\n#PlayerProps")
	}

	return truncate(b.String(), MaxPostLength)
}

// truncate cuts s to max runes, ending with an ellipsis when shortened
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

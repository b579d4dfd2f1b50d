package renderer

import (
	"fmt"
	"strings"
	"time"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// QuotesMarkdown renders a market ticker table, the terminal rendition of
// the landing page's live prices strip.
func QuotesMarkdown(quotes []stockapp.Quote, at time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market — %s\n\n", at.Format("15:04:05"))
	if len(quotes) == 0 {
		fmt.Fprintln(&b, "No quotes available.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Price | Change |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, q := range quotes {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", q.Symbol, q.Price, q.ChangePercent.Signed())
	}
	return b.String()
}

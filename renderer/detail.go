package renderer

import (
	"fmt"
	"strings"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// DetailMarkdown renders one portfolio's positions, or the appropriate
// empty state. Hidden positions must never look like an empty portfolio:
// before the deadline the backend withholds other players' picks, and the
// view says so instead of fabricating values.
func DetailMarkdown(p stockapp.Portfolio, state stockapp.PositionsState) string {
	var b strings.Builder
	name := p.Name
	if name == "" {
		name = "Untitled"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "Owner: %s — total return **%s**\n\n", p.OwnerName(), p.TotalReturnPercent.Signed())

	switch state {
	case stockapp.PositionsHidden:
		fmt.Fprintln(&b, "## Positions Hidden")
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "This portfolio's positions are hidden until the competition deadline passes.")
	case stockapp.PositionsEmpty:
		fmt.Fprintln(&b, "This portfolio holds no assets.")
	default:
		fmt.Fprintln(&b, "| Symbol | Shares | Avg Price | Current | Change |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, it := range p.Items {
			fmt.Fprintf(&b, "| %s | %g | %s | %s | %s |\n",
				it.Symbol, it.Quantity, it.InitialPrice, it.CurrentPrice, it.ChangePercent().Signed())
		}
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "Total value: **%s**\n", p.TotalValue)
	}
	return b.String()
}

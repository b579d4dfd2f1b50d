package renderer

import (
	"fmt"
	"io"
	"strings"
	"time"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// DashboardMarkdown renders the authenticated user's home view: every
// competition with either their portfolio (positions, per-item change,
// total return) or a join hint, mirroring the web dashboard.
func DashboardMarkdown(user stockapp.User, comps []stockapp.Competition, mine []stockapp.Portfolio, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dashboard — %s\n\n", user.Email)

	if len(comps) == 0 {
		fmt.Fprintln(&b, "No active competitions.")
		return b.String()
	}

	for _, comp := range comps {
		fmt.Fprintf(&b, "## %s\n\n", comp.Name)
		if comp.EntryDeadline.IsSet() {
			fmt.Fprintf(&b, "Entry deadline: %s\n\n", comp.EntryDeadline)
		}

		p, ok := portfolioFor(mine, comp.ID)
		if !ok {
			if comp.EntryDeadline.Passed(now) {
				fmt.Fprintln(&b, "Entry closed.")
			} else {
				fmt.Fprintf(&b, "You haven't created a portfolio for this competition yet. Join with `nobull create -c %d`.\n", comp.ID)
			}
			fmt.Fprintln(&b)
			continue
		}

		fmt.Fprintf(&b, "**%s** (#%d) — total return **%s**, value %s\n\n",
			p.Name, p.ID, p.TotalReturnPercent.Signed(), p.TotalValue)

		fmt.Fprintln(&b, "| Asset | Qty | Initial | Current | Change |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, it := range p.Items {
			fmt.Fprintf(&b, "| %s | %g | %s | %s | %s |\n",
				it.Symbol, it.Quantity, it.InitialPrice, it.CurrentPrice, it.ChangePercent().Signed())
		}
		fmt.Fprintln(&b)

		// Capacity hint only while the competition is open and there is
		// room left.
		conditionalBlock(&b, func(w io.Writer) bool {
			free := stockapp.MaxPicks - len(p.Items)
			if comp.EntryDeadline.Passed(now) || free <= 0 {
				return false
			}
			plural := "s"
			if free == 1 {
				plural = ""
			}
			fmt.Fprintf(w, "You can add %d more asset%s with `nobull add`.\n\n", free, plural)
			return true
		})
	}
	return b.String()
}

func portfolioFor(mine []stockapp.Portfolio, competitionID int64) (stockapp.Portfolio, bool) {
	// At most one portfolio per user and competition; the backend
	// enforces it, the client relies on it.
	for _, p := range mine {
		if p.CompetitionID == competitionID {
			return p, true
		}
	}
	return stockapp.Portfolio{}, false
}

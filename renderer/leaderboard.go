package renderer

import (
	"fmt"
	"strings"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// LeaderboardMarkdown renders ranked rows for one competition. The rows
// arrive already ranked; rendering adds podium medals and flags the
// viewer's own entry.
func LeaderboardMarkdown(comp stockapp.Competition, rows []stockapp.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Leaderboard — %s\n\n", comp.Name)
	if len(rows) == 0 {
		fmt.Fprintln(&b, "No portfolios found in this competition.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Rank | Player | Portfolio | Return |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for _, r := range rows {
		p := r.Portfolio
		player := p.OwnerName()
		if r.IsSelf() {
			player = "**YOU**"
		}
		name := p.Name
		if name == "" {
			name = "Untitled"
		}
		fmt.Fprintf(&b, "| %s#%d | %s | %s | %s |\n",
			medalPrefix(r.Rank), r.Rank, player, name, p.TotalReturnPercent.Signed())
	}
	return b.String()
}

func medalPrefix(rank int) string {
	if m := medal(rank); m != "" {
		return m + " "
	}
	return ""
}

package renderer

import (
	"fmt"
	"strings"
	"time"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// CompetitionsMarkdown renders the competition list with each entry
// window's state. All three deadline situations are distinguishable:
// open with a date, open indefinitely, and closed.
func CompetitionsMarkdown(comps []stockapp.Competition, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Competitions\n\n")
	if len(comps) == 0 {
		fmt.Fprintln(&b, "No competitions found.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Name | Entry Deadline | Entry |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|")
	for _, c := range comps {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", c.ID, c.Name, c.EntryDeadline, entryLabel(c.EntryDeadline, now))
	}
	return b.String()
}

func entryLabel(d stockapp.Deadline, now time.Time) string {
	switch d.State(now) {
	case stockapp.DeadlinePassed:
		return "closed"
	case stockapp.DeadlineAbsent:
		return "open (no deadline)"
	default:
		return "open"
	}
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
	"github.com/johnmangieri5262-bit/stock-app/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	portfolio int64
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one portfolio's positions" }
func (*showCmd) Usage() string {
	return `nobull show -p <portfolio-id>

  Shows a portfolio's positions and totals. Other players' positions stay
  hidden until the competition deadline passes; your own are always
  visible when logged in.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.portfolio, "p", 0, "portfolio id to show")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == 0 {
		fmt.Fprintln(os.Stderr, "Error: -p <portfolio-id> is required.")
		return subcommands.ExitUsageError
	}

	// Anonymous viewing is allowed, the backend just hides positions.
	viewerID := int64(-1)
	if u, ok := openSession().User(); ok {
		viewerID = u.ID
	}

	client := newClient()
	p, err := client.Portfolio(ctx, c.portfolio, viewerID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	comp, err := findCompetition(ctx, client, p.CompetitionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	state := stockapp.DetailState(p, comp.EntryDeadline, time.Now())
	printMarkdown(renderer.DetailMarkdown(p, state))
	return subcommands.ExitSuccess
}

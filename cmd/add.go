package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	portfolio int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add one asset to an existing portfolio" }
func (*addCmd) Usage() string {
	return `nobull add -p <portfolio-id> <ticker>

  Adds one share of the ticker to your portfolio, at its current price.
  Refused once the competition deadline has passed, when the portfolio is
  full, or when the ticker is already held.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.portfolio, "p", 0, "portfolio id to add to")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == 0 || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: usage is 'nobull add -p <portfolio-id> <ticker>'.")
		return subcommands.ExitUsageError
	}
	symbol := stockapp.NormalizeSymbol(f.Arg(0))

	user, err := currentUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client := newClient()
	p, err := client.Portfolio(ctx, c.portfolio, user.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	comp, err := findCompetition(ctx, client, p.CompetitionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Checked client-side first so the refusal names the actual rule
	// instead of a generic backend detail.
	if err := stockapp.CanAddItem(p, symbol, comp.EntryDeadline, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	updated, err := client.AddItem(ctx, c.portfolio, user.ID, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s added to %q (%d/%d assets).\n", symbol, updated.Name, len(updated.Items), stockapp.MaxPicks)
	return subcommands.ExitSuccess
}

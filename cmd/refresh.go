package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// refreshCmd holds the flags for the 'refresh' subcommand.
type refreshCmd struct {
	portfolio int64
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "re-price a portfolio with the latest market prices" }
func (*refreshCmd) Usage() string {
	return `nobull refresh -p <portfolio-id>

  Asks the backend to refresh every position's current price. Prices only
  move on refresh; nothing updates in the background.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.portfolio, "p", 0, "portfolio id to refresh")
}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.portfolio == 0 {
		fmt.Fprintln(os.Stderr, "Error: -p <portfolio-id> is required.")
		return subcommands.ExitUsageError
	}

	p, err := newClient().Refresh(ctx, c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%q refreshed: total %s (%s).\n", p.Name, p.TotalValue, p.TotalReturnPercent.Signed())
	return subcommands.ExitSuccess
}

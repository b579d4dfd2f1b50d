package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// tickerFlags collects repeated -t flags.
type tickerFlags []string

func (t *tickerFlags) String() string {
	return strings.Join(*t, ", ")
}

func (t *tickerFlags) Set(value string) error {
	*t = append(*t, value)
	return nil
}

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct {
	competition int64
	name        string
	tickers     tickerFlags
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "enter a competition with a new portfolio" }
func (*createCmd) Usage() string {
	return `nobull create -c <competition-id> [-n <name>] -t <ticker> -t <ticker> -t <ticker> ...

  Creates a portfolio for the given competition. Between 3 and 10 distinct
  tickers are required; each pick enters as one share at its current price.
  Entry is refused once the competition's deadline has passed.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.competition, "c", 0, "competition id to enter")
	f.StringVar(&c.name, "n", "", "portfolio name (defaults to 'My Portfolio')")
	f.Var(&c.tickers, "t", "ticker symbol to pick (can be specified multiple times)")
}

func (c *createCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.competition == 0 {
		fmt.Fprintln(os.Stderr, "Error: -c <competition-id> is required.")
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		c.name = "My Portfolio"
	}

	user, err := currentUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client := newClient()
	comp, err := findCompetition(ctx, client, c.competition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	b := stockapp.NewBuilder(c.name, comp)
	b.Fill(c.tickers...)
	req, err := b.Build(time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := client.CreatePortfolio(ctx, user.ID, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Portfolio %q created for %s with %d picks (id %d).\n", p.Name, comp.Name, len(p.Items), p.ID)
	return subcommands.ExitSuccess
}

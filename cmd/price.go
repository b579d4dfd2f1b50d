package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
	"github.com/johnmangieri5262-bit/stock-app/api"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	direct bool
	query  bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "look up spot prices for ticker symbols" }
func (*priceCmd) Usage() string {
	return `nobull price [-direct] <symbol>...
nobull price -q <symbol>

  Looks up the current price of each symbol through the backend. With
  -direct, quotes come straight from Yahoo Finance instead, useful when
  the backend is down. With -q, the symbol is validated against the
  backend search endpoint and its full name is shown.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.direct, "direct", false, "quote from Yahoo Finance directly, bypassing the backend")
	f.BoolVar(&c.query, "q", false, "validate the symbol and show its full name")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	for _, arg := range f.Args() {
		symbol := stockapp.NormalizeSymbol(arg)

		if c.query {
			info, err := client.Search(ctx, symbol)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error searching %s: %v\n", symbol, err)
				return subcommands.ExitFailure
			}
			fmt.Printf("%s  %s  %s\n", info.Symbol, info.Name, info.Price)
			continue
		}

		var q stockapp.Quote
		var err error
		if c.direct {
			q, err = api.DirectQuote(ctx, symbol)
		} else {
			q, err = client.Price(ctx, symbol)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error quoting %s: %v\n", symbol, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s  %s  %s\n", q.Symbol, q.Price, q.ChangePercent.Signed())
	}
	return subcommands.ExitSuccess
}

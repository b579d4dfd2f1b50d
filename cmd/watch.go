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

// watchInterval matches the market ticker's refresh cadence.
const watchInterval = 15 * time.Minute

// defaultWatchlist is the market ticker shown when no symbols are given.
var defaultWatchlist = []string{"BTC-USD", "SPY", "ETH-USD"}

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "follow a ticker of market quotes" }
func (*watchCmd) Usage() string {
	return `nobull watch [<symbol>...]

  Prints quotes for the given symbols, then again every 15 minutes until
  interrupted. Without arguments it watches BTC-USD, SPY and ETH-USD.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "i", watchInterval, "refresh interval")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = defaultWatchlist
	}
	for i, s := range symbols {
		symbols[i] = stockapp.NormalizeSymbol(s)
	}

	client := newClient()
	if err := printQuotes(ctx, client, symbols); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-ticker.C:
			// A failed round is reported and the watch keeps going; the
			// previous quotes stay on screen.
			if err := printQuotes(ctx, client, symbols); err != nil {
				fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
			}
		}
	}
}

// printQuotes fetches the symbols one by one, in order, so the rendered
// block always reflects a single round.
func printQuotes(ctx context.Context, client quoter, symbols []string) error {
	quotes := make([]stockapp.Quote, 0, len(symbols))
	for _, s := range symbols {
		q, err := client.Price(ctx, s)
		if err != nil {
			return err
		}
		quotes = append(quotes, q)
	}
	printMarkdown(renderer.QuotesMarkdown(quotes, time.Now()))
	return nil
}

type quoter interface {
	Price(ctx context.Context, symbol string) (stockapp.Quote, error)
}

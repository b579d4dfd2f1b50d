package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/johnmangieri5262-bit/stock-app/renderer"
)

type competitionsCmd struct{}

func (*competitionsCmd) Name() string     { return "competitions" }
func (*competitionsCmd) Synopsis() string { return "list all competitions" }
func (*competitionsCmd) Usage() string {
	return `nobull competitions

  Lists the competitions with their entry deadline state. Competitions are
  visible without logging in.
`
}

func (*competitionsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *competitionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	comps, err := newClient().Competitions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching competitions: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CompetitionsMarkdown(comps, time.Now()))
	return subcommands.ExitSuccess
}

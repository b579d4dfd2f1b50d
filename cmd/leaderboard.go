package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
	"github.com/johnmangieri5262-bit/stock-app/renderer"
)

// leaderboardCmd holds the flags for the 'leaderboard' subcommand.
type leaderboardCmd struct {
	competition int64
}

func (*leaderboardCmd) Name() string     { return "leaderboard" }
func (*leaderboardCmd) Synopsis() string { return "show a competition's ranking" }
func (*leaderboardCmd) Usage() string {
	return `nobull leaderboard -c <competition-id>

  Shows the competition ranking by total return. Your own row is marked
  when you are logged in. Works anonymously too.
`
}

func (c *leaderboardCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.competition, "c", 0, "competition id")
}

func (c *leaderboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.competition == 0 {
		fmt.Fprintln(os.Stderr, "Error: -c <competition-id> is required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	comp, err := findCompetition(ctx, client, c.competition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ports, err := client.Leaderboard(ctx, c.competition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching leaderboard: %v\n", err)
		return subcommands.ExitFailure
	}

	// Viewer is optional; anonymous viewers just get no YOU marker.
	var viewer *stockapp.User
	if u, ok := openSession().User(); ok {
		viewer = &u
	}

	printMarkdown(renderer.LeaderboardMarkdown(comp, stockapp.Rank(ports, viewer)))
	return subcommands.ExitSuccess
}

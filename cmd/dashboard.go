package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
	"github.com/johnmangieri5262-bit/stock-app/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show your portfolios across all competitions" }
func (*dashboardCmd) Usage() string {
	return `nobull dashboard

  Shows, per competition, your portfolio with its positions and returns,
  or a hint on how to join if you have not entered yet.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := currentUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client := newClient()

	// The two lists are independent; fetch them concurrently.
	var (
		wg       sync.WaitGroup
		comps    []stockapp.Competition
		ports    []stockapp.Portfolio
		compsErr error
		portsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		comps, compsErr = client.Competitions(ctx)
	}()
	go func() {
		defer wg.Done()
		ports, portsErr = client.Portfolios(ctx)
	}()
	wg.Wait()

	if compsErr != nil {
		fmt.Fprintf(os.Stderr, "Error fetching competitions: %v\n", compsErr)
		return subcommands.ExitFailure
	}
	if portsErr != nil {
		fmt.Fprintf(os.Stderr, "Error fetching portfolios: %v\n", portsErr)
		return subcommands.ExitFailure
	}

	mine := myPortfolios(ports, user)
	printMarkdown(renderer.DashboardMarkdown(user, comps, mine, time.Now()))
	return subcommands.ExitSuccess
}

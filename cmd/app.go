// Package cmd implements the CLI application for the NoBull stock-picking
// competition. A main package registers Commands on a commander and
// executes the user-selected one.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
	"github.com/johnmangieri5262-bit/stock-app/api"
	"github.com/johnmangieri5262-bit/stock-app/session"
)

// Commands are all subcommands of the nobull tool, in help order.
var Commands = []subcommands.Command{
	&loginCmd{},
	&registerCmd{},
	&logoutCmd{},
	&whoamiCmd{},
	&competitionsCmd{},
	&dashboardCmd{},
	&createCmd{},
	&addCmd{},
	&refreshCmd{},
	&leaderboardCmd{},
	&showCmd{},
	&priceCmd{},
	&watchCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so global
// flags are fine.

var apiURL = flag.String("api", "", "Base URL of the competition backend (defaults to $NOBULL_API_URL, then "+api.DefaultBaseURL+")")
var sessionDir = flag.String("session-dir", "", "Directory holding the saved session (defaults to the user config dir)")

func baseURL() string {
	if *apiURL != "" {
		return *apiURL
	}
	if v := os.Getenv("NOBULL_API_URL"); v != "" {
		return v
	}
	return api.DefaultBaseURL
}

func newClient() *api.Client { return api.New(baseURL()) }

// openSession restores the persisted session, optimistically: no network
// call until a command actually needs the backend.
func openSession() *session.Session {
	return session.Open(session.NewStore(*sessionDir), newClient())
}

var errNotLoggedIn = errors.New("not logged in. Run 'nobull login' first")

// currentUser returns the restored user or errNotLoggedIn.
func currentUser() (stockapp.User, error) {
	u, ok := openSession().User()
	if !ok {
		return stockapp.User{}, errNotLoggedIn
	}
	return u, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// findCompetition fetches competitions and returns the one with the given
// id.
func findCompetition(ctx context.Context, client *api.Client, id int64) (stockapp.Competition, error) {
	comps, err := client.Competitions(ctx)
	if err != nil {
		return stockapp.Competition{}, err
	}
	for _, c := range comps {
		if c.ID == id {
			return c, nil
		}
	}
	return stockapp.Competition{}, fmt.Errorf("competition %d not found", id)
}

// myPortfolios filters the global portfolio list down to the user's own.
func myPortfolios(ports []stockapp.Portfolio, user stockapp.User) []stockapp.Portfolio {
	mine := make([]stockapp.Portfolio, 0, len(ports))
	for _, p := range ports {
		if p.OwnerID == user.ID {
			mine = append(mine, p)
		}
	}
	return mine
}

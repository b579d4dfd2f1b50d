package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	email    string
	password string
	username string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account" }
func (*registerCmd) Usage() string {
	return `nobull register -e <email> -p <password> [-u <username>]

  Creates an account on the backend. Registration logs the new user in
  immediately; no separate login step is needed.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "account email")
	f.StringVar(&c.password, "p", "", "account password")
	f.StringVar(&c.username, "u", "", "public username shown on leaderboards (optional)")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: both -e and -p are required.")
		return subcommands.ExitUsageError
	}

	u, err := openSession().Register(ctx, c.email, c.password, c.username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created. You are logged in as %s.\n", u.DisplayName())
	return subcommands.ExitSuccess
}

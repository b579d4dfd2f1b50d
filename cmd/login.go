package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate against the competition backend" }
func (*loginCmd) Usage() string {
	return `nobull login -e <email> -p <password>

  Authenticates with the backend and stores the session locally, so later
  commands run as this user until 'nobull logout'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "account email")
	f.StringVar(&c.password, "p", "", "account password")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: both -e and -p are required.")
		return subcommands.ExitUsageError
	}

	u, err := openSession().Login(ctx, c.email, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error logging in: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Welcome back, %s.\n", u.DisplayName())
	return subcommands.ExitSuccess
}

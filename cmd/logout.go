package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "discard the stored session" }
func (*logoutCmd) Usage() string {
	return `nobull logout

  Removes the locally stored session. Logging out twice is fine.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := openSession().Logout(); err != nil {
		fmt.Fprintf(os.Stderr, "Error logging out: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

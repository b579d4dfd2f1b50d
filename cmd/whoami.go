package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "print the current user" }
func (*whoamiCmd) Usage() string {
	return `nobull whoami

  Prints the user of the stored session, if any.
`
}

func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, ok := openSession().User()
	if !ok {
		fmt.Println("Not logged in.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s <%s> (user %d)\n", u.DisplayName(), u.Email, u.ID)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/johnmangieri5262-bit/stock-app/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI coach" }
func (*assistCmd) Usage() string {
	return `nobull assist [<question>]

  Starts an interactive session with the AI coach. The coach knows the
  competition rules and, when you are logged in, your own portfolios.
  Requires a Gemini API key in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	user, _ := openSession().User()
	analyst := agent.NewAnalyst()
	coach := agent.NewCoach(newClient(), user)
	a := agent.New(os.Stdout, os.Stdin, analyst, coach)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

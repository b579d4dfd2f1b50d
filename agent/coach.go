package agent

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
	"github.com/johnmangieri5262-bit/stock-app/api"
	"github.com/johnmangieri5262-bit/stock-app/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user plays a stock-picking competition: they build a portfolio of 3 to 10
			tickers before the entry deadline and compete on total return percent.
			You never give financial advice for real money; everything here is a game.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			Devise a plan of questions for the experts and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst is the market news expert, grounded with Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst, aware of companies, tickers and
		the latest market news. Ask the Analyst whenever you need recent or
		grounding information about a stock.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market analyst. You can search and find about anything related
			to companies, tickers and markets. You leverage Google Search to ground
			your assertions and relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewCoach is the competition expert. It reads the user's standings and
// portfolios through the backend tools.
func NewCoach(client *api.Client, user stockapp.User) *Expert {
	lib := []Function{
		competitionsFunc(client),
		portfoliosFunc(client, user),
		leaderboardFunc(client, user),
		priceFunc(client),
	}

	return &Expert{
		Name: "Coach",
		Description: `This is the competition coach. He knows the competitions, their
		deadlines, the leaderboards, and the user's own portfolios and returns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the coach of a stock-picking competition player.
				Use the available tools to look up competitions, leaderboards,
				the user's portfolios, and spot prices. Positions of other players
				are hidden until the competition deadline passes; do not speculate
				about them.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func funcError(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func funcOutput(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func competitionsFunc(client *api.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Competitions",
			Description: `Competitions lists all competitions with their id and entry deadline state.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all competitions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			comps, err := client.Competitions(ctx)
			if err != nil {
				return funcError(id, "Competitions", err)
			}
			return funcOutput(id, "Competitions", renderer.CompetitionsMarkdown(comps, time.Now()))
		},
	}
}

func portfoliosFunc(client *api.Client, user stockapp.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MyPortfolios",
			Description: `MyPortfolios shows the user's own portfolios across all
			competitions, with positions, values and returns.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard of the user's portfolios.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			if user.ID == 0 {
				return funcError(id, "MyPortfolios", fmt.Errorf("the user is not logged in"))
			}
			comps, err := client.Competitions(ctx)
			if err != nil {
				return funcError(id, "MyPortfolios", err)
			}
			ports, err := client.Portfolios(ctx)
			if err != nil {
				return funcError(id, "MyPortfolios", err)
			}
			mine := make([]stockapp.Portfolio, 0, len(ports))
			for _, p := range ports {
				if p.OwnerID == user.ID {
					mine = append(mine, p)
				}
			}
			return funcOutput(id, "MyPortfolios", renderer.DashboardMarkdown(user, comps, mine, time.Now()))
		},
	}
}

func leaderboardFunc(client *api.Client, user stockapp.User) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Leaderboard",
			Description: `Leaderboard shows a competition's ranking by total return
			percent, best first. The user's own row is marked YOU.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"competition_id": {
						Type:        genai.TypeInteger,
						Description: "The id of the competition, as listed by Competitions.",
					},
				},
				Required: []string{"competition_id"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted ranking table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			compID, err := intArg(args, "competition_id")
			if err != nil {
				return funcError(id, "Leaderboard", err)
			}
			comps, err := client.Competitions(ctx)
			if err != nil {
				return funcError(id, "Leaderboard", err)
			}
			var comp stockapp.Competition
			found := false
			for _, c := range comps {
				if c.ID == compID {
					comp, found = c, true
					break
				}
			}
			if !found {
				return funcError(id, "Leaderboard", fmt.Errorf("competition %d not found", compID))
			}
			ports, err := client.Leaderboard(ctx, compID)
			if err != nil {
				return funcError(id, "Leaderboard", err)
			}
			var viewer *stockapp.User
			if user.ID != 0 {
				viewer = &user
			}
			return funcOutput(id, "Leaderboard", renderer.LeaderboardMarkdown(comp, stockapp.Rank(ports, viewer)))
		},
	}
}

func priceFunc(client *api.Client) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Price",
			Description: `Price returns the current price and daily change of one ticker symbol.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The ticker symbol, e.g. AAPL or BTC-USD.",
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The symbol, its price and its daily change percent.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sym, ok := args["symbol"].(string)
			if !ok {
				return funcError(id, "Price", fmt.Errorf("argument 'symbol' is not a string but %T", args["symbol"]))
			}
			q, err := client.Price(ctx, stockapp.NormalizeSymbol(sym))
			if err != nil {
				return funcError(id, "Price", err)
			}
			return funcOutput(id, "Price", fmt.Sprintf("%s %s %s", q.Symbol, q.Price, q.ChangePercent.Signed()))
		},
	}
}

// intArg reads an integer argument; the SDK decodes JSON numbers as
// float64.
func intArg(args map[string]any, name string) (int64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("argument %q is required", name)
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number but %T", name, v)
	}
}

package renderer

import (
	"strings"
	"testing"
	"time"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

var now = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestDetailMarkdownHiddenVsEmpty(t *testing.T) {
	p := stockapp.Portfolio{Name: "Mystery", OwnerID: 3}

	hidden := DetailMarkdown(p, stockapp.PositionsHidden)
	if !strings.Contains(hidden, "Positions Hidden") {
		t.Errorf("hidden state rendering lacks the hidden banner:\n%s", hidden)
	}
	if strings.Contains(hidden, "no assets") {
		t.Error("hidden state rendered like an empty portfolio")
	}

	empty := DetailMarkdown(p, stockapp.PositionsEmpty)
	if !strings.Contains(empty, "no assets") {
		t.Errorf("empty state rendering lacks the no-assets message:\n%s", empty)
	}
	if strings.Contains(empty, "Positions Hidden") {
		t.Error("empty state rendered as hidden")
	}
}

func TestDetailMarkdownShowsPositionsAndTotal(t *testing.T) {
	p := stockapp.Portfolio{
		Name:       "Winners",
		TotalValue: stockapp.USD(1234.5),
		Items: []stockapp.PortfolioItem{
			{Symbol: "AAPL", Quantity: 1, InitialPrice: stockapp.USD(100), CurrentPrice: stockapp.USD(150)},
		},
	}
	md := DetailMarkdown(p, stockapp.PositionsShown)
	for _, want := range []string{"AAPL", "+50.00%", "$1,234.50"} {
		if !strings.Contains(md, want) {
			t.Errorf("detail rendering lacks %q:\n%s", want, md)
		}
	}
}

func TestLeaderboardMarkdown(t *testing.T) {
	comp := stockapp.Competition{ID: 3, Name: "Q3 Challenge"}
	viewer := &stockapp.User{ID: 2}
	rows := stockapp.Rank([]stockapp.Portfolio{
		{ID: 1, Name: "Alpha", OwnerID: 1, TotalReturnPercent: 7},
		{ID: 2, Name: "Beta", OwnerID: 2, TotalReturnPercent: 5},
	}, viewer)

	md := LeaderboardMarkdown(comp, rows)
	if !strings.Contains(md, "🥇 #1 | User 1 | Alpha | +7.00%") {
		t.Errorf("rank 1 row missing or malformed:\n%s", md)
	}
	if !strings.Contains(md, "**YOU**") {
		t.Errorf("viewer's row not flagged:\n%s", md)
	}
	// The first-listed portfolio is rank 1, whatever its return value.
	if strings.Index(md, "Alpha") > strings.Index(md, "Beta") {
		t.Errorf("row order differs from input order:\n%s", md)
	}
}

func TestDashboardMarkdown(t *testing.T) {
	user := stockapp.User{ID: 7, Email: "a@b.c"}
	comps := []stockapp.Competition{
		{ID: 1, Name: "Open Comp", EntryDeadline: stockapp.DeadlineAt(now.Add(time.Hour))},
		{ID: 2, Name: "Closed Comp", EntryDeadline: stockapp.DeadlineAt(now.Add(-time.Hour))},
	}
	mine := []stockapp.Portfolio{{
		ID: 42, Name: "My Picks", OwnerID: 7, CompetitionID: 1,
		TotalReturnPercent: -1.5, TotalValue: stockapp.USD(300),
		Items: []stockapp.PortfolioItem{
			{Symbol: "AAPL", Quantity: 1, InitialPrice: stockapp.USD(100), CurrentPrice: stockapp.USD(98.5)},
		},
	}}

	md := DashboardMarkdown(user, comps, mine, now)
	for _, want := range []string{"My Picks", "-1.50%", "You can add 9 more assets", "Entry closed."} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard rendering lacks %q:\n%s", want, md)
		}
	}
}

func TestDashboardNoCapacityHintWhenFull(t *testing.T) {
	user := stockapp.User{ID: 7, Email: "a@b.c"}
	comps := []stockapp.Competition{{ID: 1, Name: "Comp", EntryDeadline: stockapp.DeadlineAt(now.Add(time.Hour))}}
	items := make([]stockapp.PortfolioItem, stockapp.MaxPicks)
	for i := range items {
		items[i] = stockapp.PortfolioItem{Symbol: string(rune('A' + i)), InitialPrice: stockapp.USD(1), CurrentPrice: stockapp.USD(1)}
	}
	mine := []stockapp.Portfolio{{ID: 1, OwnerID: 7, CompetitionID: 1, Items: items}}

	md := DashboardMarkdown(user, comps, mine, now)
	if strings.Contains(md, "You can add") {
		t.Errorf("capacity hint shown for a full portfolio:\n%s", md)
	}
}

func TestQuotesMarkdown(t *testing.T) {
	md := QuotesMarkdown([]stockapp.Quote{
		{Symbol: "BTC-USD", Price: stockapp.USD(64250.5), ChangePercent: -1.25},
		{Symbol: "SPY", Price: stockapp.USD(534.12), ChangePercent: 0},
	}, now)
	for _, want := range []string{"BTC-USD", "$64,250.50", "-1.25%", "+0.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("quotes rendering lacks %q:\n%s", want, md)
		}
	}
}

func TestCompetitionsMarkdownDeadlineStates(t *testing.T) {
	comps := []stockapp.Competition{
		{ID: 1, Name: "Forever", EntryDeadline: stockapp.NoDeadline()},
		{ID: 2, Name: "Soon", EntryDeadline: stockapp.DeadlineAt(now.Add(time.Hour))},
		{ID: 3, Name: "Done", EntryDeadline: stockapp.DeadlineAt(now.Add(-time.Hour))},
	}
	md := CompetitionsMarkdown(comps, now)
	for _, want := range []string{"open (no deadline)", "| open |", "closed"} {
		if !strings.Contains(md, want) {
			t.Errorf("competitions rendering lacks %q:\n%s", want, md)
		}
	}
}

// Package api is the HTTP client for the NoBull competition backend, a
// REST-ish JSON service reached under a single configurable base URL.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// DefaultBaseURL is where a local development backend listens.
const DefaultBaseURL = "http://localhost:8000"

// Client issues requests against the backend. The zero value is not
// usable; construct with New.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the backend at baseURL. An empty baseURL
// selects DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: baseURL, http: new(http.Client)}
}

// Login authenticates by email and password and returns the user record.
func (c *Client) Login(ctx context.Context, email, password string) (stockapp.User, error) {
	var u stockapp.User
	body := map[string]string{"email": email, "password": password}
	err := c.post(ctx, "/users/login", body, &u)
	return u, err
}

// Register creates an account and returns the user record. The backend
// treats registration as an immediate login.
func (c *Client) Register(ctx context.Context, email, password, username string) (stockapp.User, error) {
	var u stockapp.User
	body := map[string]string{"email": email, "password": password, "username": username}
	err := c.post(ctx, "/users/", body, &u)
	return u, err
}

// Competitions lists all competitions.
func (c *Client) Competitions(ctx context.Context) ([]stockapp.Competition, error) {
	comps := make([]stockapp.Competition, 0)
	err := c.get(ctx, "/competitions/", &comps)
	return comps, err
}

// Portfolios lists all portfolios across users; callers filter by owner.
func (c *Client) Portfolios(ctx context.Context) ([]stockapp.Portfolio, error) {
	ports := make([]stockapp.Portfolio, 0)
	err := c.get(ctx, "/portfolios/", &ports)
	return ports, err
}

// Leaderboard returns a competition's portfolios pre-ranked by total
// return percent descending. The order is the ranking; do not re-sort.
func (c *Client) Leaderboard(ctx context.Context, competitionID int64) ([]stockapp.Portfolio, error) {
	ports := make([]stockapp.Portfolio, 0)
	err := c.get(ctx, fmt.Sprintf("/competitions/%d/leaderboard", competitionID), &ports)
	return ports, err
}

// CreatePortfolio submits a competition entry for the user.
func (c *Client) CreatePortfolio(ctx context.Context, userID int64, req stockapp.NewPortfolio) (stockapp.Portfolio, error) {
	var p stockapp.Portfolio
	err := c.post(ctx, fmt.Sprintf("/users/%d/portfolios/", userID), req, &p)
	return p, err
}

// Refresh asks the backend to re-price the portfolio and returns the
// updated record.
func (c *Client) Refresh(ctx context.Context, portfolioID int64) (stockapp.Portfolio, error) {
	var p stockapp.Portfolio
	err := c.post(ctx, fmt.Sprintf("/portfolios/%d/refresh", portfolioID), nil, &p)
	return p, err
}

// AddItem appends one position to the portfolio. The backend re-checks
// ownership, capacity and the entry deadline.
func (c *Client) AddItem(ctx context.Context, portfolioID, userID int64, symbol string) (stockapp.Portfolio, error) {
	var p stockapp.Portfolio
	body := map[string]any{"symbol": symbol, "quantity": 1}
	path := fmt.Sprintf("/portfolios/%d/items?user_id=%d", portfolioID, userID)
	err := c.post(ctx, path, body, &p)
	return p, err
}

// Portfolio fetches one portfolio's details. viewerID identifies the
// requesting user so the backend can reveal the owner's own positions;
// pass a negative id for anonymous viewing. Positions of other players are
// omitted until the competition deadline passes, so an empty Items list
// must be interpreted with stockapp.DetailState, not as an empty
// portfolio.
func (c *Client) Portfolio(ctx context.Context, portfolioID, viewerID int64) (stockapp.Portfolio, error) {
	var p stockapp.Portfolio
	path := fmt.Sprintf("/portfolios/%d", portfolioID)
	if viewerID >= 0 {
		path = fmt.Sprintf("%s?user_id=%d", path, viewerID)
	}
	err := c.get(ctx, path, &p)
	return p, err
}

// Price fetches the spot price of one symbol.
func (c *Client) Price(ctx context.Context, symbol string) (stockapp.Quote, error) {
	var q stockapp.Quote
	err := c.get(ctx, "/stocks/price/"+url.PathEscape(symbol), &q)
	return q, err
}

// Search validates a ticker symbol and returns its name and last price.
func (c *Client) Search(ctx context.Context, query string) (stockapp.TickerInfo, error) {
	var info stockapp.TickerInfo
	err := c.get(ctx, "/stocks/search?query="+url.QueryEscape(query), &info)
	return info, err
}

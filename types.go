package stockapp

import "fmt"

// anonymousName labels an account whose username is unknown or unset.
func anonymousName(id int64) string { return fmt.Sprintf("User %d", id) }

// User is the authenticated account record returned by login and
// registration. It is owned by the session for its lifetime and discarded
// on logout.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

// DisplayName returns the username when the account has one, or a
// neutral "User <id>" label otherwise.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return anonymousName(u.ID)
}

// Competition is read-only from the client's perspective.
type Competition struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	EntryDeadline Deadline `json:"entry_deadline"`
}

// Owner is the public slice of a portfolio owner's account, as embedded in
// leaderboard responses. Username may be missing.
type Owner struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
}

// Portfolio is a named, user-owned collection of ticker positions entered
// into one competition. TotalValue and TotalReturnPercent are computed by
// the backend and treated as authoritative; the client only formats them.
//
// An empty Items list does not necessarily mean an empty portfolio: the
// backend omits positions of other players until the competition deadline
// passes. Use DetailState to interpret it.
type Portfolio struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	OwnerID            int64           `json:"owner_id"`
	CompetitionID      int64           `json:"competition_id"`
	TotalValue         Price           `json:"total_value"`
	TotalReturnPercent Percent         `json:"total_return_percent"`
	Items              []PortfolioItem `json:"items"`
	Owner              *Owner          `json:"owner,omitempty"`
}

// OwnerName returns the owner's username when the backend included one,
// falling back to a neutral label derived from the owner id.
func (p Portfolio) OwnerName() string {
	if p.Owner != nil && p.Owner.Username != "" {
		return p.Owner.Username
	}
	return anonymousName(p.OwnerID)
}

// PortfolioItem is one ticker holding. InitialPrice is the price at which
// the position entered the portfolio and never changes; CurrentPrice is the
// latest observed market price, refreshed on explicit user action only.
type PortfolioItem struct {
	ID           int64   `json:"id"`
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AssetType    string  `json:"asset_type"`
	InitialPrice Price   `json:"initial_price"`
	CurrentPrice Price   `json:"current_price"`
}

// NewItem is one position of a portfolio creation request.
type NewItem struct {
	Symbol    string  `json:"symbol"`
	AssetType string  `json:"asset_type"`
	Quantity  float64 `json:"quantity"`
}

// NewPortfolio is the payload of a portfolio creation request.
type NewPortfolio struct {
	Name          string    `json:"name"`
	CompetitionID int64     `json:"competition_id"`
	Items         []NewItem `json:"items"`
}

// Quote is a spot price observation for one symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         Price   `json:"price"`
	ChangePercent Percent `json:"change_percent"`
}

// TickerInfo is the result of validating a ticker symbol against the
// backend search endpoint.
type TickerInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  Price  `json:"price"`
}

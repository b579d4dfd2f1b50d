package stockapp

import "time"

// This file holds the ranking derivation. The backend returns leaderboards
// pre-filtered to one competition and pre-sorted by total return percent
// descending; the client never re-sorts. Rank is strictly positional, so
// ties keep their first-returned order.

// RowKind tags a leaderboard row as the viewer's own entry or somebody
// else's, computed once per row instead of re-derived inline.
type RowKind int

const (
	RowOther RowKind = iota
	RowSelf
)

// Row is one display row of a leaderboard.
type Row struct {
	Rank      int // 1-based position in the server-returned order
	Kind      RowKind
	Portfolio Portfolio
}

// IsSelf reports whether the row belongs to the viewer.
func (r Row) IsSelf() bool { return r.Kind == RowSelf }

// Rank turns a server-ordered leaderboard into display rows. viewer may be
// nil for anonymous browsing; then every row is RowOther. The input order
// is preserved exactly.
func Rank(portfolios []Portfolio, viewer *User) []Row {
	rows := make([]Row, 0, len(portfolios))
	for i, p := range portfolios {
		kind := RowOther
		if viewer != nil && p.OwnerID == viewer.ID {
			kind = RowSelf
		}
		rows = append(rows, Row{Rank: i + 1, Kind: kind, Portfolio: p})
	}
	return rows
}

// PositionsState interprets the items list of a portfolio detail response.
type PositionsState int

const (
	// PositionsShown: the items list is populated and can be rendered.
	PositionsShown PositionsState = iota
	// PositionsHidden: the backend withheld the positions because the
	// competition deadline has not passed yet. Must not be rendered as an
	// empty portfolio.
	PositionsHidden
	// PositionsEmpty: the deadline has passed and the portfolio genuinely
	// holds nothing.
	PositionsEmpty
)

// DetailState decides between shown, hidden, and genuinely empty. The
// branch is on the deadline, not on the item count alone: before the
// deadline an empty list means the backend hid the positions. With no
// deadline at all, positions of other players stay hidden indefinitely.
func DetailState(p Portfolio, deadline Deadline, now time.Time) PositionsState {
	if len(p.Items) > 0 {
		return PositionsShown
	}
	if deadline.Passed(now) {
		return PositionsEmpty
	}
	return PositionsHidden
}

package stockapp

import "github.com/shopspring/decimal"

// This file holds the valuation derivation: pure computation over
// already-fetched position data. Portfolio-level totals are never
// recomputed here; the backend owns them and the client only formats.

// Change returns the unrealized currency delta of the position.
func (it PortfolioItem) Change() Price {
	return it.CurrentPrice.Sub(it.InitialPrice)
}

// ChangePercent returns the unrealized percent change of the position. A
// position can never legitimately enter at a zero or negative price, but
// the derivation must not fail if it does: it returns exactly 0.
func (it PortfolioItem) ChangePercent() Percent {
	if !it.InitialPrice.IsPositive() {
		return 0
	}
	pct := it.Change().value.
		Div(it.InitialPrice.value).
		Mul(decimal.NewFromInt(100))
	return Percent(pct.InexactFloat64())
}

// Gaining reports whether the position is flat or up. Flat counts as
// gaining: the views color and sign zero like a gain.
func (it PortfolioItem) Gaining() bool {
	return !it.Change().IsNegative()
}

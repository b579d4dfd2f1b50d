package stockapp

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The competition backend quotes everything in US dollars.
const reportingCurrency = "USD"

// Price is a monetary value in the reporting currency. It wraps a decimal
// so derivations stay exact; the backend serializes prices as plain JSON
// numbers.
type Price struct {
	value decimal.Decimal
}

// USD builds a Price from a float, for literals and tests.
func USD(v float64) Price { return Price{value: decimal.NewFromFloat(v)} }

func (p Price) IsZero() bool         { return p.value.IsZero() }
func (p Price) IsPositive() bool     { return p.value.IsPositive() }
func (p Price) IsNegative() bool     { return p.value.IsNegative() }
func (p Price) Equal(q Price) bool   { return p.value.Equal(q.value) }
func (p Price) Add(q Price) Price    { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price    { return Price{value: p.value.Sub(q.value)} }
func (p Price) Float() float64       { return p.value.InexactFloat64() }

// String formats the price the way the views display money: currency
// symbol, thousands grouping, and exactly the currency's fraction digits,
// e.g. "$1,234.56".
func (p Price) String() string {
	cur := money.GetCurrency(reportingCurrency)
	minor := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// SignedString is String with an explicit leading sign, "+" included for
// non-negative values.
func (p Price) SignedString() string {
	if p.value.IsNegative() {
		return "-" + Price{value: p.value.Neg()}.String()
	}
	return "+" + p.String()
}

func (p Price) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }

func (p *Price) UnmarshalJSON(b []byte) error { return p.value.UnmarshalJSON(b) }

package stockapp

import "fmt"

// Percent is a percentage value, e.g. 7.5 for +7.50%.
type Percent float64

// Equal compares with a small tolerance, since percents go through float
// arithmetic on the backend.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Signed renders the percent with an explicit sign and two decimals.
// Non-negative values get a "+" prefix: the views always show "+0.00%"
// for a flat return, never a bare zero.
func (p Percent) Signed() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}

package stockapp

import "testing"

func TestItemChangePercent(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		current float64
		want    Percent
	}{
		{"gain", 100, 150, 50},
		{"loss", 200, 150, -25},
		{"flat", 99.5, 99.5, 0},
		{"fractional", 3, 4, 33.333333},
		{"zero initial guards divide by zero", 0, 150, 0},
		{"negative initial guards too", -10, 150, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := PortfolioItem{InitialPrice: USD(tc.initial), CurrentPrice: USD(tc.current)}
			if got := it.ChangePercent(); !got.Equal(tc.want) {
				t.Errorf("ChangePercent() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestItemChange(t *testing.T) {
	it := PortfolioItem{InitialPrice: USD(120.25), CurrentPrice: USD(118)}
	if got, want := it.Change(), USD(-2.25); !got.Equal(want) {
		t.Errorf("Change() = %v, want %v", got, want)
	}
	if it.Gaining() {
		t.Error("Gaining() = true for a losing position")
	}
}

func TestPercentSigned(t *testing.T) {
	tests := []struct {
		pct  Percent
		want string
	}{
		{5, "+5.00%"},
		{0, "+0.00%"},
		{-3.456, "-3.46%"},
		{12.345, "+12.35%"},
	}
	for _, tc := range tests {
		if got := tc.pct.Signed(); got != tc.want {
			t.Errorf("Percent(%v).Signed() = %q, want %q", float64(tc.pct), got, tc.want)
		}
	}
}

func TestPriceString(t *testing.T) {
	tests := []struct {
		price Price
		want  string
	}{
		{USD(1234.5), "$1,234.50"},
		{USD(0), "$0.00"},
		{USD(99.999), "$100.00"},
	}
	for _, tc := range tests {
		if got := tc.price.String(); got != tc.want {
			t.Errorf("Price.String() = %q, want %q", got, tc.want)
		}
	}
}

package stockapp

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func openCompetition() Competition {
	return Competition{ID: 1, Name: "Q3 Challenge", EntryDeadline: DeadlineAt(testNow.Add(30 * 24 * time.Hour))}
}

func TestBuilderValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		wantErr error
	}{
		{"too few", []string{"AAPL", "MSFT"}, ErrTooFewPicks},
		{"duplicates after case normalization", []string{"aapl", "AAPL", "MSFT"}, ErrDuplicatePicks},
		{"accepted", []string{"AAPL", "MSFT", "GOOG"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder("My Picks", openCompetition())
			b.Fill(tc.symbols...)
			if err := b.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuilderTooManyPicks(t *testing.T) {
	// 11 distinct symbols do not fit. The slot list stops growing at
	// MaxPicks, but the overflow must surface as a rejection: a submission
	// can never silently lose a pick, since items cannot be removed later.
	b := NewBuilder("Overflow", openCompetition())
	syms := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	b.Fill(syms...)
	if got := len(b.Picks()); got != MaxPicks {
		t.Errorf("len(Picks()) = %d, want %d", got, MaxPicks)
	}
	if err := b.Validate(); !errors.Is(err, ErrTooManyPicks) {
		t.Errorf("Validate() = %v, want %v", err, ErrTooManyPicks)
	}
	if _, err := b.Build(testNow); !errors.Is(err, ErrTooManyPicks) {
		t.Errorf("Build() = %v, want %v", err, ErrTooManyPicks)
	}
	// Validate also rejects a slot list forced above the maximum.
	b2 := NewBuilder("Forced", openCompetition())
	b2.slots = syms
	if err := b2.Validate(); !errors.Is(err, ErrTooManyPicks) {
		t.Errorf("Validate() = %v, want %v", err, ErrTooManyPicks)
	}
}

func TestBuilderSlotBounds(t *testing.T) {
	b := NewBuilder("Bounds", openCompetition())
	if got := len(b.Slots()); got != MinPicks {
		t.Fatalf("new builder has %d slots, want %d", got, MinPicks)
	}
	// Removing below the minimum is a no-op.
	if b.RemoveSlot(0) {
		t.Error("RemoveSlot succeeded at the minimum slot count")
	}
	// Growing to the maximum works, one past it is a no-op.
	for i := MinPicks; i < MaxPicks; i++ {
		if !b.AddSlot() {
			t.Fatalf("AddSlot failed at %d slots", i)
		}
	}
	if b.AddSlot() {
		t.Error("AddSlot succeeded above the maximum slot count")
	}
	if !b.RemoveSlot(0) {
		t.Error("RemoveSlot failed above the minimum slot count")
	}
}

func TestBuilderNormalizesSymbols(t *testing.T) {
	b := NewBuilder("Case", openCompetition())
	b.SetSlot(0, " nvda ")
	if got := b.Slots()[0]; got != "NVDA" {
		t.Errorf("slot = %q, want %q", got, "NVDA")
	}
}

func TestBuilderBuildPayload(t *testing.T) {
	b := NewBuilder("My Winning Strategy", openCompetition())
	b.Fill("AAPL", "MSFT", "GOOG")
	req, err := b.Build(testNow)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if req.Name != "My Winning Strategy" || req.CompetitionID != 1 {
		t.Errorf("Build() header = {%q %d}, want {%q 1}", req.Name, req.CompetitionID, "My Winning Strategy")
	}
	if len(req.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(req.Items))
	}
	for _, it := range req.Items {
		if it.AssetType != "STOCK" || it.Quantity != 1 {
			t.Errorf("item %s = {%s %v}, want {STOCK 1}", it.Symbol, it.AssetType, it.Quantity)
		}
	}
}

func TestBuilderBlocksClosedCompetition(t *testing.T) {
	closed := Competition{ID: 2, EntryDeadline: DeadlineAt(testNow.Add(-time.Hour))}
	b := NewBuilder("Too Late", closed)
	b.Fill("AAPL", "MSFT", "GOOG")
	if _, err := b.Build(testNow); !errors.Is(err, ErrEntryClosed) {
		t.Errorf("Build() = %v, want %v", err, ErrEntryClosed)
	}
}

func TestCanAddItem(t *testing.T) {
	held := Portfolio{Items: []PortfolioItem{{Symbol: "AAPL"}, {Symbol: "MSFT"}, {Symbol: "GOOG"}}}
	open := DeadlineAt(testNow.Add(time.Hour))

	if err := CanAddItem(held, "nvda", open, testNow); err != nil {
		t.Errorf("CanAddItem(new symbol) = %v, want nil", err)
	}
	if err := CanAddItem(held, "aapl", open, testNow); err == nil {
		t.Error("CanAddItem(duplicate) = nil, want error")
	}
	if err := CanAddItem(held, "NVDA", DeadlineAt(testNow.Add(-time.Hour)), testNow); !errors.Is(err, ErrEntryClosed) {
		t.Errorf("CanAddItem(closed) = %v, want %v", err, ErrEntryClosed)
	}
	full := Portfolio{Items: make([]PortfolioItem, MaxPicks)}
	if err := CanAddItem(full, "NVDA", open, testNow); !errors.Is(err, ErrTooManyPicks) {
		t.Errorf("CanAddItem(full) = %v, want %v", err, ErrTooManyPicks)
	}
}

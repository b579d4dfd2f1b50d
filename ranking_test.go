package stockapp

import (
	"testing"
	"time"
)

func TestRankPreservesServerOrder(t *testing.T) {
	// The backend pre-sorts; the client must not re-sort, even when the
	// input looks unsorted.
	unsorted := []Portfolio{
		{ID: 10, OwnerID: 1, TotalReturnPercent: 5.0},
		{ID: 20, OwnerID: 2, TotalReturnPercent: 7.0},
	}
	rows := Rank(unsorted, nil)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Portfolio.ID != 10 || rows[0].Rank != 1 {
		t.Errorf("rows[0] = {ID:%d Rank:%d}, want input order preserved with rank 1", rows[0].Portfolio.ID, rows[0].Rank)
	}
	if rows[1].Portfolio.ID != 20 || rows[1].Rank != 2 {
		t.Errorf("rows[1] = {ID:%d Rank:%d}, want input order preserved with rank 2", rows[1].Portfolio.ID, rows[1].Rank)
	}
}

func TestRankTagsSelf(t *testing.T) {
	viewer := &User{ID: 2}
	rows := Rank([]Portfolio{
		{ID: 10, OwnerID: 1},
		{ID: 20, OwnerID: 2},
	}, viewer)
	if rows[0].IsSelf() {
		t.Error("rows[0].IsSelf() = true, want other")
	}
	if !rows[1].IsSelf() {
		t.Error("rows[1].IsSelf() = false, want self")
	}
	// Anonymous browsing: nobody is self.
	for _, r := range Rank([]Portfolio{{OwnerID: 1}, {OwnerID: 2}}, nil) {
		if r.IsSelf() {
			t.Errorf("rank %d tagged self without a viewer", r.Rank)
		}
	}
}

func TestRankTiesKeepFirstReturnedOrder(t *testing.T) {
	rows := Rank([]Portfolio{
		{ID: 1, TotalReturnPercent: 3.0},
		{ID: 2, TotalReturnPercent: 3.0},
	}, nil)
	if rows[0].Portfolio.ID != 1 || rows[1].Portfolio.ID != 2 {
		t.Errorf("tie order = [%d %d], want [1 2]", rows[0].Portfolio.ID, rows[1].Portfolio.ID)
	}
}

func TestDetailState(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	future := DeadlineAt(now.Add(24 * time.Hour))
	past := DeadlineAt(now.Add(-24 * time.Hour))
	withItems := Portfolio{Items: []PortfolioItem{{Symbol: "AAPL"}}}
	empty := Portfolio{}

	tests := []struct {
		name     string
		p        Portfolio
		deadline Deadline
		want     PositionsState
	}{
		{"items present", withItems, future, PositionsShown},
		{"empty before deadline is hidden", empty, future, PositionsHidden},
		{"empty after deadline is genuinely empty", empty, past, PositionsEmpty},
		{"empty with no deadline stays hidden", empty, NoDeadline(), PositionsHidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetailState(tc.p, tc.deadline, now); got != tc.want {
				t.Errorf("DetailState() = %v, want %v", got, tc.want)
			}
		})
	}
}

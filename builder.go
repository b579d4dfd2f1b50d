package stockapp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Portfolio size bounds, enforced at creation time.
const (
	MinPicks = 3
	MaxPicks = 10
)

// Validation failures of the construction flow. They are detected
// client-side and shown inline; submission is never attempted.
var (
	ErrTooFewPicks    = fmt.Errorf("you must select at least %d assets", MinPicks)
	ErrTooManyPicks   = fmt.Errorf("you can select a maximum of %d assets", MaxPicks)
	ErrDuplicatePicks = errors.New("please remove duplicate tickers")
	ErrEntryClosed    = errors.New("competition entry deadline has passed")
)

// Builder is the portfolio construction flow: a list of ticker slots,
// each empty or filled, edited until submission. It starts with MinPicks
// empty slots; adding a slot is a no-op above MaxPicks and removing one is
// a no-op at or below MinPicks.
type Builder struct {
	name        string
	competition Competition
	slots       []string
	overflow    int
}

// NewBuilder opens the construction flow for one competition.
func NewBuilder(name string, competition Competition) *Builder {
	return &Builder{
		name:        name,
		competition: competition,
		slots:       make([]string, MinPicks),
	}
}

// Name returns the portfolio name under construction.
func (b *Builder) Name() string { return b.name }

// Slots returns a copy of the current slot values, empty strings included.
func (b *Builder) Slots() []string {
	return append([]string(nil), b.slots...)
}

// AddSlot appends an empty slot. It reports whether a slot was added;
// above MaxPicks it does nothing.
func (b *Builder) AddSlot() bool {
	if len(b.slots) >= MaxPicks {
		return false
	}
	b.slots = append(b.slots, "")
	return true
}

// RemoveSlot deletes the slot at index i. It reports whether a slot was
// removed; at or below MinPicks, or for an out-of-range index, it does
// nothing.
func (b *Builder) RemoveSlot(i int) bool {
	if len(b.slots) <= MinPicks || i < 0 || i >= len(b.slots) {
		return false
	}
	b.slots = append(b.slots[:i], b.slots[i+1:]...)
	return true
}

// SetSlot fills the slot at index i. Symbols are normalized to upper case
// on entry, the way the entry form uppercases as the user types.
func (b *Builder) SetSlot(i int, symbol string) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	b.slots[i] = NormalizeSymbol(symbol)
}

// Fill places each symbol in the first empty slot, growing the slot list
// as needed up to MaxPicks. Symbols beyond capacity are counted as
// overflow; Validate then fails with ErrTooManyPicks instead of silently
// submitting a shorter portfolio.
func (b *Builder) Fill(symbols ...string) {
	next := 0
	for i, sym := range symbols {
		for next < len(b.slots) && b.slots[next] != "" {
			next++
		}
		if next >= len(b.slots) && !b.AddSlot() {
			b.overflow += len(symbols) - i
			return
		}
		b.SetSlot(next, sym)
	}
}

// Picks returns the non-empty slots in order.
func (b *Builder) Picks() []string {
	picks := make([]string, 0, len(b.slots))
	for _, s := range b.slots {
		if s != "" {
			picks = append(picks, s)
		}
	}
	return picks
}

// Validate applies the submission rules in order, first violated rule
// wins: minimum count, then maximum count, then duplicates. Duplicate
// detection is case-insensitive since symbols are normalized on entry.
func (b *Builder) Validate() error {
	picks := b.Picks()
	if len(picks) < MinPicks {
		return ErrTooFewPicks
	}
	if len(picks)+b.overflow > MaxPicks {
		return ErrTooManyPicks
	}
	seen := make(map[string]bool, len(picks))
	for _, sym := range picks {
		key := strings.ToUpper(sym)
		if seen[key] {
			return ErrDuplicatePicks
		}
		seen[key] = true
	}
	return nil
}

// Build validates the slots and produces the creation payload. Entry is
// blocked entirely once the competition deadline has passed. Every item is
// submitted as one share of a stock; quantities are not editable in this
// flow.
func (b *Builder) Build(now time.Time) (NewPortfolio, error) {
	if b.competition.EntryDeadline.Passed(now) {
		return NewPortfolio{}, ErrEntryClosed
	}
	if err := b.Validate(); err != nil {
		return NewPortfolio{}, err
	}
	picks := b.Picks()
	items := make([]NewItem, 0, len(picks))
	for _, sym := range picks {
		items = append(items, NewItem{Symbol: sym, AssetType: "STOCK", Quantity: 1})
	}
	return NewPortfolio{
		Name:          b.name,
		CompetitionID: b.competition.ID,
		Items:         items,
	}, nil
}

// NormalizeSymbol upper-cases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// CanAddItem checks the append-one-asset path against a portfolio's
// current holdings: the competition must still be open, the portfolio must
// hold fewer than MaxPicks items, and the symbol must not already be held.
// The duplicate rule is enforced here even though the backend merely
// ignores duplicates, so the user gets an inline answer instead of a
// silent no-op.
func CanAddItem(p Portfolio, symbol string, deadline Deadline, now time.Time) error {
	if deadline.Passed(now) {
		return ErrEntryClosed
	}
	if len(p.Items) >= MaxPicks {
		return ErrTooManyPicks
	}
	sym := NormalizeSymbol(symbol)
	for _, it := range p.Items {
		if strings.EqualFold(it.Symbol, sym) {
			return fmt.Errorf("%s is already in this portfolio", sym)
		}
	}
	return nil
}

package stockapp

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// DeadlineState distinguishes the three situations a view must handle:
// a competition with no deadline at all, one whose deadline is still in
// the future, and one whose deadline has passed.
type DeadlineState int

const (
	DeadlineAbsent DeadlineState = iota
	DeadlineFuture
	DeadlinePassed
)

// Deadline is an optional instant. The backend sends it as an RFC 3339
// timestamp or null; absence is an explicit state, not a zero time in
// disguise.
type Deadline struct {
	t   time.Time
	set bool
}

// DeadlineAt builds a set deadline, for tests and fixtures.
func DeadlineAt(t time.Time) Deadline { return Deadline{t: t, set: true} }

// NoDeadline is the absent deadline.
func NoDeadline() Deadline { return Deadline{} }

// IsSet reports whether a deadline exists at all.
func (d Deadline) IsSet() bool { return d.set }

// Time returns the instant and whether it is set.
func (d Deadline) Time() (time.Time, bool) { return d.t, d.set }

// Passed reports whether the deadline exists and lies strictly before now.
// An absent deadline never passes: entry stays open and positions stay
// hidden for such competitions.
func (d Deadline) Passed(now time.Time) bool {
	return d.set && now.After(d.t)
}

// State resolves the deadline relative to now.
func (d Deadline) State(now time.Time) DeadlineState {
	switch {
	case !d.set:
		return DeadlineAbsent
	case now.After(d.t):
		return DeadlinePassed
	default:
		return DeadlineFuture
	}
}

// String formats the deadline for display, or "none" when absent.
func (d Deadline) String() string {
	if !d.set {
		return "none"
	}
	return d.t.Format("2006-01-02 15:04 MST")
}

func (d Deadline) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return d.t.MarshalJSON()
}

func (d *Deadline) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Deadline{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	// The backend serializes naive UTC datetimes, so the offset may be
	// missing ("2026-01-01T00:00:00").
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*d = Deadline{t: t, set: true}
			return nil
		}
	}
	return fmt.Errorf("invalid deadline %q", s)
}

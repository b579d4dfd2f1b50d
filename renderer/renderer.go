// Package renderer turns fetched competition data into markdown for the
// terminal. Each view of the application has one rendering function; the
// cmd package pipes the result through glamour.
package renderer

import (
	"bytes"
	"io"
)

// medal marks the podium ranks the way the leaderboard views do.
func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}

// conditionalBlock lets a section be fully written and decided on at the
// end: if block returns true the content is printed to w, otherwise it is
// discarded.
func conditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

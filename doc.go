// Package stockapp is the client-side logic of NoBull, a stock-picking
// competition platform. Users authenticate against a remote backend,
// assemble a portfolio of 3 to 10 ticker symbols for a competition, and
// follow ranked leaderboards of return performance.
//
// All heavy lifting (price fetching, return computation, ranking,
// persistence) lives on the backend; this package holds the domain types
// and the few derivations the client performs on already-fetched data:
//   - Valuation: per-item unrealized change and percent change, plus the
//     formatting rules for currency and percent deltas.
//   - Ranking: positional leaderboard rows tagged self/other, and the
//     positions-hidden rule applied before a competition deadline.
//   - Construction: the slot state machine and validation rules for
//     building a competition entry.
//
// The surrounding subpackages wire these derivations to the outside world:
// api speaks to the backend, session persists the authenticated user,
// renderer turns results into markdown, and cmd exposes one subcommand per
// view for the `nobull` command-line tool.
package stockapp

// Package folio is a personal investment ledger. It tracks buy/sell
// transactions, dividends and manual cash movements per security, and
// derives cost basis, realized and unrealized profit, dividend yield,
// historical point-in-time valuations and long-horizon compound-growth
// projections.
//
// All calculators are pure functions over an immutable [Book] snapshot:
// they never mutate their inputs and are safe to invoke concurrently.
// Persistence is delegated to a [Repository]; the single bit-exact external
// interface is the backup file handled by [Export] and [Import].
package folio

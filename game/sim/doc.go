// Package sim runs complete games without a server: one agent per seat, a
// round cap against stalled strategies, and JSON/CSV logging for offline
// analysis.
//
// RunGame plays a single seeded match to completion. RunBatch plays N games
// in parallel goroutines, each match fully self-contained behind its own
// seeded deck. RunTournament round-robins a strategy list on a two player
// configuration, seating every pairing both ways.
//
// Logger writes one JSON file per game plus a summary.csv per batch; the
// analyze command reads these back.
package sim

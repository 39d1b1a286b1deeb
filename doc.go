// Package levelsafe checks records of integer levels for "safety" — steady,
// bounded movement in one direction — and counts how many pass, with and
// without a single-level tolerance.
//
// 🚀 What is levelsafe?
//
//	A small, dependency-light toolkit built from three layers:
//		• Deltas: lazy or materialized differences between adjacent levels
//		• Safety: the monotonic 1..3 step rule, its dampened variant, tallies
//		• Reports: line-oriented parsing of level files
//
// Under the hood, everything is organized under these packages:
//
//	deltas/        — Seq, SeqWithout, Of, Without
//	safety/        — IsSafe, IsSafeWithDampening, Rule, Explain, Tally
//	reports/       — Record, Parse, ReadFile
//	config/        — environment configuration for the command
//	cmd/levelsafe/ — command-line entry point
//
// Quick example:
//
//	levels   7 6 4 2 1
//	deltas    -1 -2 -2 -1   → all decreasing, all within 1..3 → safe
//
//	levels   1 3 2 4 5
//	deltas    +2 -1 +2 +1   → direction change → unsafe
//	drop 3 → 1 2 4 5        → safe with dampening
//
//	go install github.com/katalvlaran/levelsafe/cmd/levelsafe@latest
package levelsafe

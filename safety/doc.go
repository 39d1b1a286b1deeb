// Package safety decides whether a record of levels is "safe": every step
// between adjacent levels lies within a bounded range and all steps move in
// the same direction.
//
// 🚀 The rule:
//
//	A delta sequence is safe when, for every delta d,
//	  • MinStep ≤ |d| ≤ MaxStep   (default 1..3, so a flat step is never safe)
//	  • sign(d) equals the sign of the first delta
//	An empty delta sequence (records of 0 or 1 levels) is vacuously safe.
//
// ✨ Dampening:
//
//	A record that fails the rule is still accepted with dampening when
//	removing exactly one level yields a safe record. Every single-level
//	removal is tried; the first success wins.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/levelsafe/deltas"
//	  "github.com/katalvlaran/levelsafe/safety"
//	)
//
//	ok := safety.IsSafe(deltas.Seq(levels))
//	okDampened := safety.IsSafeWithDampening(levels)
//	sum := safety.Tally(records) // sum.Safe, sum.Dampened
//
// Complexity:
//
//   - IsSafe:              O(N) time, O(1) memory, exits on first violation
//   - IsSafeWithDampening: O(N²) time worst case, O(1) memory
package safety

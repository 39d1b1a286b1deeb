// Package deltas turns an ordered run of integer levels into the sequence of
// consecutive differences between them.
//
// 🚀 What is a delta sequence?
//
//	For levels [7, 6, 4, 2, 1] the deltas are [-1, -2, -2, -1]:
//	each element is next − previous. A record with fewer than two
//	levels has no deltas at all.
//
// ✨ Key features:
//   - lazy iteration via iter.Seq[int] (Seq, SeqWithout)
//   - materialized slices when a []int is handier (Of, Without)
//   - single-index exclusion: deltas of a record as if one level were removed
//   - restartable: every range over a sequence re-scans the original levels
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/levelsafe/deltas"
//
//	for d := range deltas.Seq(levels) {
//	  // inspect d
//	}
//
//	// deltas with index 2 left out
//	ds := deltas.Without(levels, 2)
//
// Performance:
//
//   - Time:   O(N) per full pass
//   - Memory: O(1) for Seq/SeqWithout, O(N) for Of/Without
package deltas

package safety

import "github.com/katalvlaran/levelsafe/deltas"

// IsSafeWithDampening reports whether record is safe under DefaultRule, either
// as-is or after removing exactly one level.
func IsSafeWithDampening(record []int) bool {
	return defaultRule.CheckDampened(record)
}

// CheckDampened reports whether record is safe as-is or becomes safe with any
// single level removed. The unmodified record is tried first, then each index
// from 0 to len(record)-1; the first success ends the search.
//
// Complexity: O(N²) time worst case, O(1) memory.
func (r Rule) CheckDampened(record []int) bool {
	_, ok := r.DampeningIndex(record)

	return ok
}

// DampeningIndex returns which level has to go for record to be safe:
//   - (-1, true)  when record is already safe;
//   - (i, true)   for the first index i whose removal makes it safe;
//   - (-1, false) when no single removal helps.
func (r Rule) DampeningIndex(record []int) (int, bool) {
	if r.Check(deltas.Seq(record)) {
		return -1, true
	}
	for i := range record {
		if r.Check(deltas.SeqWithout(record, i)) {
			return i, true
		}
	}

	return -1, false
}

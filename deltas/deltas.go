package deltas

import (
	"iter"
	"math"
	"slices"
)

// Seq returns the lazy delta sequence of levels: levels[i+1] - levels[i] for
// every adjacent pair, in order.
//
// A difference too large for an int is clamped to math.MaxInt or
// math.MinInt. Yields nothing when len(levels) < 2. The input slice is never modified and
// each range over the result starts again from levels[0].
//
// Example:
//
//	for d := range Seq([]int{1, 3, 6}) {
//	  fmt.Println(d) // 2, then 3
//	}
func Seq(levels []int) iter.Seq[int] {
	return SeqWithout(levels, NoSkip)
}

// SeqWithout returns the lazy delta sequence of levels with the element at
// index skip left out. Adjacency is taken over the remaining elements in their
// original relative order, so removing index i joins levels[i-1] and levels[i+1].
//
// A skip outside [0, len(levels)) excludes nothing and behaves like Seq.
//
// Complexity: O(N) time, O(1) memory per pass.
func SeqWithout(levels []int, skip int) iter.Seq[int] {
	return func(yield func(int) bool) {
		havePrev := false
		prev := 0
		for i, v := range levels {
			if i == skip {
				continue
			}
			if havePrev && !yield(sub(v, prev)) {
				return
			}
			prev, havePrev = v, true
		}
	}
}

// Of returns the materialized delta sequence of levels.
// The result is non-nil and empty when len(levels) < 2.
func Of(levels []int) []int {
	return Without(levels, NoSkip)
}

// Without returns the materialized delta sequence of levels with index skip
// left out. See SeqWithout for the exclusion rules.
func Without(levels []int, skip int) []int {
	n := effectiveLen(levels, skip)
	if n < 2 {
		return []int{}
	}
	out := make([]int, 0, n-1)

	return slices.AppendSeq(out, SeqWithout(levels, skip))
}

// sub returns v - prev, clamped to math.MaxInt or math.MinInt when the
// difference does not fit in an int. The sign always matches the direction.
func sub(v, prev int) int {
	d := v - prev
	switch {
	case v > prev && d <= 0:
		return math.MaxInt
	case v < prev && d >= 0:
		return math.MinInt
	}

	return d
}

// effectiveLen is the number of levels left after excluding skip.
func effectiveLen(levels []int, skip int) int {
	if skip >= 0 && skip < len(levels) {
		return len(levels) - 1
	}

	return len(levels)
}

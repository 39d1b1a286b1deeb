package safety

import "iter"

var defaultRule = DefaultRule()

// IsSafe reports whether the delta sequence d is safe under DefaultRule.
func IsSafe(d iter.Seq[int]) bool {
	return defaultRule.Check(d)
}

// Check scans d once, left to right, and reports whether it is safe:
//  1. a delta with |delta| < MinStep or |delta| > MaxStep fails;
//  2. a delta whose sign differs from the first delta's sign fails;
//  3. reaching the end succeeds (an empty sequence is safe).
//
// The scan stops at the first violation.
func (r Rule) Check(d iter.Seq[int]) bool {
	sign := Undetermined
	for delta := range d {
		if !r.inBounds(delta) {
			return false
		}
		next := signOf(delta)
		if sign != Undetermined && next != sign {
			return false
		}
		sign = next
	}

	return true
}

// Explain runs the same scan as Check and reports where and why it stopped.
// Explain(d).Safe == Check(d) for every d.
func (r Rule) Explain(d iter.Seq[int]) Verdict {
	sign := Undetermined
	i := 0
	for delta := range d {
		if !r.inBounds(delta) {
			return Verdict{Index: i, Delta: delta, Sign: sign, Reason: ReasonStep}
		}
		next := signOf(delta)
		if sign != Undetermined && next != sign {
			return Verdict{Index: i, Delta: delta, Sign: sign, Reason: ReasonSign}
		}
		sign = next
		i++
	}

	return Verdict{Safe: true, Index: -1, Sign: sign, Reason: ReasonNone}
}

func (r Rule) inBounds(delta int) bool {
	a := abs(delta)

	return a >= r.MinStep && a <= r.MaxStep
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

package safety

import (
	"errors"
	"fmt"
)

// Sentinel errors for safety rules.
var (
	// ErrBadRule indicates a Rule whose step bounds cannot describe a safe record.
	ErrBadRule = errors.New("safety: rule requires 1 <= MinStep <= MaxStep")
)

// Default step bounds.
const (
	DefaultMinStep = 1
	DefaultMaxStep = 3
)

// Sign is the direction a delta sequence has committed to.
type Sign int

const (
	// Undetermined: no delta has been seen yet.
	Undetermined Sign = iota
	// Increasing: deltas are positive.
	Increasing
	// Decreasing: deltas are negative.
	Decreasing
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	switch s {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "undetermined"
	}
}

// signOf classifies a delta. Anything not positive counts as Decreasing;
// zero never gets here because the step bound rejects it first.
func signOf(d int) Sign {
	if d > 0 {
		return Increasing
	}

	return Decreasing
}

// Reason tells why a delta sequence was judged unsafe.
type Reason int

const (
	// ReasonNone: the sequence is safe.
	ReasonNone Reason = iota
	// ReasonStep: a delta's magnitude is outside [MinStep, MaxStep].
	ReasonStep
	// ReasonSign: a delta moves against the established direction.
	ReasonSign
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonStep:
		return "step out of bounds"
	case ReasonSign:
		return "direction change"
	default:
		return "safe"
	}
}

// Verdict is the outcome of Rule.Explain.
//
// Fields:
//   - Safe  — true when every delta passed.
//   - Index — position of the first offending delta, or -1 when Safe.
//   - Delta — value of the offending delta (0 when Safe).
//   - Sign  — direction established before the scan stopped.
//   - Reason — why the scan stopped.
type Verdict struct {
	Safe   bool
	Index  int
	Delta  int
	Sign   Sign
	Reason Reason
}

// Rule holds the bounded-step limits of the safety check.
//
// Example:
//
//	r := safety.DefaultRule()
//	ok := r.Check(deltas.Seq(levels))
type Rule struct {
	MinStep int
	MaxStep int
}

// DefaultRule returns Rule{MinStep: 1, MaxStep: 3}.
func DefaultRule() Rule {
	return Rule{MinStep: DefaultMinStep, MaxStep: DefaultMaxStep}
}

// Validate returns ErrBadRule when MinStep < 1 or MaxStep < MinStep.
func (r Rule) Validate() error {
	if r.MinStep < 1 || r.MaxStep < r.MinStep {
		return fmt.Errorf("%w: got MinStep=%d MaxStep=%d", ErrBadRule, r.MinStep, r.MaxStep)
	}

	return nil
}

// Summary counts records over one batch.
type Summary struct {
	Total    int // records seen
	Safe     int // records safe without dampening
	Dampened int // records safe with dampening (always >= Safe)
}

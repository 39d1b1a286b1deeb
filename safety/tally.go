package safety

import (
	"github.com/katalvlaran/levelsafe/deltas"
	"github.com/katalvlaran/levelsafe/reports"
)

// Count returns how many records satisfy pred.
func Count(records []reports.Record, pred func([]int) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}

	return n
}

// Tally counts the records that are safe under DefaultRule, without and with
// dampening. The two counts come from independent passes over records.
func Tally(records []reports.Record) Summary {
	return defaultRule.Tally(records)
}

// Tally is the Rule-specific form of the package-level Tally.
func (r Rule) Tally(records []reports.Record) Summary {
	return Summary{
		Total:    len(records),
		Safe:     Count(records, r.isSafeRecord),
		Dampened: Count(records, r.CheckDampened),
	}
}

func (r Rule) isSafeRecord(record []int) bool {
	return r.Check(deltas.Seq(record))
}

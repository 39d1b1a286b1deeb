package reports_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/levelsafe/reports"
)

// ExampleParse reads two records from an in-memory input.
func ExampleParse() {
	recs, err := reports.Parse(strings.NewReader("7 6 4 2 1\n1 3 2 4 5\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range recs {
		fmt.Println(len(r), r)
	}
	// Output:
	// 5 [7 6 4 2 1]
	// 5 [1 3 2 4 5]
}

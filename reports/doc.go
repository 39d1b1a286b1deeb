// Package reports reads records of integer levels from text input.
//
// Each input line is one Record: whitespace-separated base-10 integers,
// kept in file order. A blank line is an empty Record. The first token that
// is not an integer stops parsing with a *ParseError wrapping ErrMalformedLevel.
//
//	recs, err := reports.ReadFile("day2.txt")
//	if errors.Is(err, reports.ErrMalformedLevel) {
//	  // bad input
//	}
package reports

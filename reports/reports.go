package reports

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Parse reads one Record per line from r, in order.
// It fails fast on the first malformed token.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []Record
	line := 0
	for sc.Scan() {
		line++
		rec, err := parseLine(sc.Text(), line)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reports: read line %d: %w", line+1, err)
	}

	return out, nil
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reports: open input: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func parseLine(text string, line int) (Record, error) {
	fields := strings.Fields(text)
	rec := make(Record, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Line: line, Token: tok, Err: err}
		}
		rec = append(rec, v)
	}

	return rec, nil
}

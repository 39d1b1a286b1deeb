package reports_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levelsafe/reports"
)

// TestParse_Lines verifies order, whitespace handling and blank lines.
func TestParse_Lines(t *testing.T) {
	in := "7 6 4 2 1\n  1\t2   7 8 9  \n\n-3 -1\n"
	recs, err := reports.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, reports.Record{7, 6, 4, 2, 1}, recs[0])
	assert.Equal(t, reports.Record{1, 2, 7, 8, 9}, recs[1], "tabs and repeated spaces separate levels")
	assert.Empty(t, recs[2], "blank line is an empty record")
	assert.Equal(t, reports.Record{-3, -1}, recs[3], "negative levels parse")
}

// TestParse_NoTrailingNewline checks the final line is kept without a newline.
func TestParse_NoTrailingNewline(t *testing.T) {
	recs, err := reports.Parse(strings.NewReader("1 2\n3 4"))
	require.NoError(t, err)
	assert.Equal(t, []reports.Record{{1, 2}, {3, 4}}, recs)
}

// TestParse_Empty returns no records and no error.
func TestParse_Empty(t *testing.T) {
	recs, err := reports.Parse(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

// TestParse_Malformed fails fast with line and token information.
func TestParse_Malformed(t *testing.T) {
	recs, err := reports.Parse(strings.NewReader("1 2 3\n4 five 6\n7 8\n"))
	assert.Nil(t, recs)
	require.ErrorIs(t, err, reports.ErrMalformedLevel)
	assert.ErrorIs(t, err, strconv.ErrSyntax, "strconv cause is preserved")

	var pe *reports.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "five", pe.Token)
	assert.Contains(t, err.Error(), "line 2")
}

// TestParse_Overflow rejects a level that does not fit in an int.
func TestParse_Overflow(t *testing.T) {
	_, err := reports.Parse(strings.NewReader("1 99999999999999999999999\n"))
	require.ErrorIs(t, err, reports.ErrMalformedLevel)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

// TestReadFile_Sample loads the six-record sample.
func TestReadFile_Sample(t *testing.T) {
	recs, err := reports.ReadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, reports.Record{1, 3, 6, 7, 9}, recs[5])
}

// TestReadFile_Missing wraps the os error.
func TestReadFile_Missing(t *testing.T) {
	_, err := reports.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

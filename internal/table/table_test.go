package table_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/fmtspec"
	"github.com/bjaus/fmtspec/internal/table"
)

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestWriteASCII(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := table.Write(&buf, table.Table{
		Header: []string{"Field", "Value"},
		Rows:   [][]string{{"width", "10"}, {"type", "hex"}},
		Align:  []fmtspec.Align{fmtspec.AlignLeft, fmtspec.AlignRight},
		Border: table.BorderASCII,
	})
	require.NoError(t, err)
	want := "" +
		"+-------+-------+\n" +
		"| Field | Value |\n" +
		"+-------+-------+\n" +
		"| width |    10 |\n" +
		"| type  |   hex |\n" +
		"+-------+-------+\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRoundedCenteredAndShortRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := table.Write(&buf, table.Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"xyz"}, {"", "é"}},
		Align:  []fmtspec.Align{fmtspec.AlignCenter},
	})
	require.NoError(t, err)
	want := "" +
		"╭─────┬───╮\n" +
		"│  a  │ b │\n" +
		"├─────┼───┤\n" +
		"│ xyz │   │\n" +
		"│     │ é │\n" +
		"╰─────┴───╯\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, table.Table{}))
	assert.Empty(t, buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	err := table.Write(errWriter{}, table.Table{Header: []string{"a"}})
	assert.Error(t, err)
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := table.WriteMarkdown(&buf, table.Table{
		Header: []string{"Field", "n", "c"},
		Rows:   [][]string{{"width", "10", "x"}},
		Align:  []fmtspec.Align{fmtspec.AlignDefault, fmtspec.AlignRight, fmtspec.AlignCenter},
	})
	require.NoError(t, err)
	want := "" +
		"| Field |   n |  c  |\n" +
		"| ----- | --: | :-: |\n" +
		"| width |  10 |  x  |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, table.WriteMarkdown(&buf, table.Table{}))
	assert.Empty(t, buf.String())
}

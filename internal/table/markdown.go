package table

import (
	"io"
	"strings"

	"github.com/bjaus/fmtspec"
)

// minMarkdownWidth leaves room for the ":-:" alignment marker.
const minMarkdownWidth = 3

// WriteMarkdown renders t as a GitHub-flavoured Markdown table. The border
// style is ignored.
func WriteMarkdown(w io.Writer, t Table) error {
	numCols := colCount(t.Header, t.Rows)
	if numCols == 0 {
		return nil
	}
	widths := computeWidths(numCols, t.Header, t.Rows)
	for i := range widths {
		widths[i] = max(widths[i], minMarkdownWidth)
	}
	cells := cellOptions(numCols, t.Align, widths)

	var sb strings.Builder
	drawRow(&sb, t.Header, cells, "|")

	sb.WriteByte('|')
	for i, width := range widths {
		sb.WriteByte(' ')
		switch cells[i].Align() {
		case fmtspec.AlignRight:
			sb.WriteString(strings.Repeat("-", width-1) + ":")
		case fmtspec.AlignCenter:
			sb.WriteString(":" + strings.Repeat("-", width-2) + ":")
		default:
			sb.WriteString(strings.Repeat("-", width))
		}
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')

	for _, row := range t.Rows {
		drawRow(&sb, row, cells, "|")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

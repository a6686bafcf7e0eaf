// Package table renders small bordered tables. Cells are padded by the
// fmtspec alignment engine, so column alignment follows the same rules as
// any other aligned value.
package table

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bjaus/fmtspec"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// Table is a header row, data rows and per-column alignment. Columns
// without an alignment are left aligned.
type Table struct {
	Header []string
	Rows   [][]string
	Align  []fmtspec.Align
	Border BorderStyle
}

// Write renders t to w.
func Write(w io.Writer, t Table) error {
	numCols := colCount(t.Header, t.Rows)
	if numCols == 0 {
		return nil
	}
	widths := computeWidths(numCols, t.Header, t.Rows)
	cells := cellOptions(numCols, t.Align, widths)
	bc, ok := borderSets[t.Border]
	if !ok {
		bc = borderSets[BorderRounded]
	}

	var sb strings.Builder
	drawHLine(&sb, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	if len(t.Header) > 0 {
		drawRow(&sb, t.Header, cells, bc.vertical)
		drawHLine(&sb, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	}
	for _, row := range t.Rows {
		drawRow(&sb, row, cells, bc.vertical)
	}
	drawHLine(&sb, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)

	_, err := io.WriteString(w, sb.String())
	return err
}

func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// cellOptions builds the format options of every column: its alignment
// with the column width.
func cellOptions(numCols int, aligns []fmtspec.Align, widths []int) []fmtspec.Options {
	ops := make([]fmtspec.Options, numCols)
	for i := range ops {
		align := fmtspec.AlignLeft
		if i < len(aligns) && aligns[i] != fmtspec.AlignDefault {
			align = aligns[i]
		}
		ops[i] = fmtspec.Parse(align.String()).WithWidth(widths[i])
	}
	return ops
}

func drawHLine(sb *strings.Builder, widths []int, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func drawRow(sb *strings.Builder, cells []string, ops []fmtspec.Options, vert string) {
	out := fmtspec.To(sb)
	sb.WriteString(vert)
	for i, o := range ops {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteByte(' ')
		out.Put(fmtspec.FO(o, cell))
		sb.WriteByte(' ')
		if i < len(ops)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	sb.WriteByte('\n')
}

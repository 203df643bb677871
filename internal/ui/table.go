// Package ui renders aligned tables and status badges for CLI output.
package ui

import (
	"strings"
	"unicode/utf8"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table. Cell widths
// are computed on visible characters, so styled (ANSI-colored) cells
// align correctly.
func FormatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			out.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			out.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
		out.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return out.String()
}

// Cell flattens a value into a single table cell, collapsing newlines
// and truncating overlong content.
func Cell(value string) string {
	value = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
	if utf8.RuneCountInString(value) <= tableCellMaxWidth {
		return value
	}

	keep := tableCellMaxWidth - len(tableCellEllipsis)
	runes := []rune(value)
	return string(runes[:keep]) + tableCellEllipsis
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(stripANSICodes(value))
}

func stripANSICodes(input string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		out.WriteByte(char)
	}
	return out.String()
}

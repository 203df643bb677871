package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_AlignsColumns(t *testing.T) {
	out := FormatTable(
		[]string{"NO", "NAME"},
		[][]string{
			{"A1", "Alice"},
			{"B234", "Bob"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "A1    Alice") {
		t.Errorf("unexpected row alignment: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "B234  Bob") {
		t.Errorf("unexpected row alignment: %q", lines[2])
	}
}

func TestFormatTable_IgnoresANSIWidth(t *testing.T) {
	styled := "\x1b[32mok\x1b[0m"
	out := FormatTable(
		[]string{"STATUS", "TITLE"},
		[][]string{{styled, "x"}},
	)

	line := strings.Split(out, "\n")[1]
	idx := strings.Index(stripANSICodes(line), "x")
	if idx != 8 {
		t.Errorf("expected visible column at offset 8, got %d: %q", idx, line)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A"}, 2)
	builder.AddRow([]string{"1"})
	builder.AddRow([]string{"2"})

	out := builder.String()
	if !strings.Contains(out, "1\n") || !strings.Contains(out, "2\n") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCell(t *testing.T) {
	if got := Cell("line1\nline2"); got != "line1 line2" {
		t.Errorf("newlines must collapse, got %q", got)
	}

	long := strings.Repeat("x", 80)
	got := Cell(long)
	if len(got) != tableCellMaxWidth {
		t.Errorf("expected %d chars, got %d", tableCellMaxWidth, len(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

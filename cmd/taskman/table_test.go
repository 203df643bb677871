package main

import (
	"strings"
	"testing"

	"github.com/nhaseem/taskman/roster"
)

func TestFormatStaffTable(t *testing.T) {
	members := []roster.Staff{
		{ID: "abc123", No: "A1", Name: "Alice"},
		{ID: "def456", No: "B22", Name: "Bob"},
	}

	output := formatStaffTable(members)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got:\n%s", output)
	}
	if !strings.Contains(lines[0], "NO") || !strings.Contains(lines[0], "NAME") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Alice") || !strings.Contains(lines[2], "Bob") {
		t.Errorf("rows out of order:\n%s", output)
	}
}

func TestFormatTaskTable(t *testing.T) {
	tasks := []roster.EnrichedTask{
		{
			Task: roster.Task{
				ID:     "t1",
				Title:  "Write minutes",
				Date:   "2026-04-01",
				Status: roster.StatusPending,
			},
			StaffName: "Alice",
		},
		{
			Task: roster.Task{
				ID:      "t2",
				Title:   "File report",
				Date:    "2026-04-02",
				DueDate: "2026-04-09",
				Status:  roster.StatusCompleted,
			},
			StaffName: roster.UnknownStaffName,
		},
	}

	output := formatTaskTable(tasks, func(s roster.Status) string { return string(s) })
	if !strings.Contains(output, "Write minutes") || !strings.Contains(output, "File report") {
		t.Fatalf("missing task rows:\n%s", output)
	}
	if !strings.Contains(output, "Unknown") {
		t.Errorf("expected unresolved staff to render as Unknown:\n%s", output)
	}

	lines := strings.Split(output, "\n")
	if !strings.Contains(lines[1], " - ") {
		t.Errorf("expected dash for missing due date: %q", lines[1])
	}
	if !strings.Contains(lines[2], "2026-04-09") {
		t.Errorf("expected due date in row: %q", lines[2])
	}
}

func TestFormatTaskTableBadgeAlignment(t *testing.T) {
	tasks := []roster.EnrichedTask{
		{Task: roster.Task{ID: "t1", Title: "A", Date: "2026-04-01", Status: roster.StatusPending}, StaffName: "Alice"},
		{Task: roster.Task{ID: "t2", Title: "B", Date: "2026-04-02", Status: roster.StatusCompleted}, StaffName: "Alice"},
	}

	plain := formatTaskTable(tasks, func(s roster.Status) string { return string(s) })
	styled := formatTaskTable(tasks, func(s roster.Status) string {
		return "\x1b[32m" + string(s) + "\x1b[0m"
	})

	if stripANSI(styled) != plain {
		t.Fatalf("expected styled output to align with plain output\nplain:\n%s\nstyled:\n%s", plain, styled)
	}
}

func stripANSI(input string) string {
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

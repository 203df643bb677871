package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/nhaseem/taskman/internal/markdown"
	"github.com/nhaseem/taskman/internal/ui"
	"github.com/nhaseem/taskman/roster"
)

// printStaffTable prints staff members in a table format.
func printStaffTable(members []roster.Staff) {
	if len(members) == 0 {
		fmt.Println("No staff members found.")
		return
	}

	fmt.Print(formatStaffTable(members))
}

func formatStaffTable(members []roster.Staff) string {
	builder := ui.NewTableBuilder([]string{"ID", "NO", "NAME"}, len(members))
	for _, member := range members {
		builder.AddRow([]string{member.ID, member.No, ui.Cell(member.Name)})
	}
	return builder.String()
}

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []roster.EnrichedTask) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, ui.StatusBadge))
}

func formatTaskTable(tasks []roster.EnrichedTask, badge func(roster.Status) string) string {
	builder := ui.NewTableBuilder([]string{"ID", "STAFF", "DATE", "DUE", "STATUS", "TITLE"}, len(tasks))
	for _, task := range tasks {
		due := task.DueDate
		if due == "" {
			due = "-"
		}
		builder.AddRow([]string{
			task.ID,
			ui.Cell(task.StaffName),
			task.Date,
			due,
			badge(task.Status),
			ui.Cell(task.Title),
		})
	}
	return builder.String()
}

// printTaskDetail prints detailed information about a task.
func printTaskDetail(task roster.EnrichedTask) {
	fmt.Printf("ID:     %s\n", task.ID)
	fmt.Printf("Title:  %s\n", task.Title)
	fmt.Printf("Staff:  %s\n", task.StaffName)
	fmt.Printf("Date:   %s\n", task.Date)
	if task.DueDate != "" {
		fmt.Printf("Due:    %s\n", task.DueDate)
	}
	fmt.Printf("Status: %s\n", ui.StatusBadge(task.Status))

	if task.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", renderDescription(task.Description))
	}
}

const detailLineWidth = 80

func renderDescription(value string) string {
	width := detailLineWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}
	rendered := markdown.Render(width, 2, []byte(value))
	if rendered == nil {
		return "  -"
	}
	return string(rendered)
}

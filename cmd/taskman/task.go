package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhaseem/taskman/roster"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// task add
var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var (
	taskAddStaff       string
	taskAddDescription string
	taskAddDate        string
	taskAddDue         string
)

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateStaff       string
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateDate        string
	taskUpdateDue         string
	taskUpdateStatus      string
)

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskDelete,
}

// task toggle
var taskToggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Toggle tasks between pending and completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskToggle,
}

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task list
var taskListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List tasks, optionally filtered by title or staff name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTaskList,
}

var taskListJSON bool

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskUpdateCmd, taskDeleteCmd, taskToggleCmd, taskShowCmd, taskListCmd)
	addDescriptionFlagAliases(taskAddCmd, taskUpdateCmd)

	taskAddCmd.Flags().StringVar(&taskAddStaff, "staff", "", "Staff ID to assign the task to")
	taskAddCmd.Flags().StringVarP(&taskAddDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	taskAddCmd.Flags().StringVar(&taskAddDate, "date", "", "Record date (YYYY-MM-DD, default today)")
	taskAddCmd.Flags().StringVar(&taskAddDue, "due", "", "Due date (YYYY-MM-DD)")

	taskUpdateCmd.Flags().StringVar(&taskUpdateStaff, "staff", "", "Staff ID to assign the task to")
	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "Task title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDate, "date", "", "Record date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "Due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateStatus, "status", "", "Status (pending, completed)")

	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	description, err := resolveDescriptionFromStdin(taskAddDescription, cmd.InOrStdin())
	if err != nil {
		return err
	}

	task, err := store.AddTask(args[0], roster.TaskOptions{
		StaffID:     taskAddStaff,
		Description: description,
		Date:        taskAddDate,
		DueDate:     taskAddDue,
	})
	if err != nil {
		return err
	}

	fmt.Println(task.ID)
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	update := roster.TaskUpdate{}
	if cmd.Flags().Changed("staff") {
		update.StaffID = &taskUpdateStaff
	}
	if cmd.Flags().Changed("title") {
		update.Title = &taskUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		description, err := resolveDescriptionFromStdin(taskUpdateDescription, cmd.InOrStdin())
		if err != nil {
			return err
		}
		update.Description = &description
	}
	if cmd.Flags().Changed("date") {
		update.Date = &taskUpdateDate
	}
	if cmd.Flags().Changed("due") {
		update.DueDate = &taskUpdateDue
	}
	if cmd.Flags().Changed("status") {
		status := roster.Status(taskUpdateStatus)
		update.Status = &status
	}

	return store.UpdateTask(args[0], update)
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, id := range args {
		removed, err := store.RemoveTask(id)
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("Deleted %s\n", id)
		}
	}
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, id := range args {
		if err := store.ToggleTaskStatus(id); err != nil {
			return err
		}
	}
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	tasks := store.SearchTasks("")
	byID := make(map[string]roster.EnrichedTask, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	var selected []roster.EnrichedTask
	for _, id := range args {
		task, ok := byID[id]
		if !ok {
			return fmt.Errorf("task %s not found", id)
		}
		selected = append(selected, task)
	}

	if taskShowJSON {
		return encodeJSONToStdout(selected)
	}

	for i, task := range selected {
		if i > 0 {
			fmt.Println()
		}
		printTaskDetail(task)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	tasks := store.SearchTasks(query)

	if taskListJSON {
		return encodeJSONToStdout(tasks)
	}

	printTaskTable(tasks)
	return nil
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}

package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhaseem/taskman/roster"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff members",
}

// staff add
var staffAddCmd = &cobra.Command{
	Use:   "add <no> <name>",
	Short: "Add a new staff member",
	Args:  cobra.ExactArgs(2),
	RunE:  runStaffAdd,
}

// staff update
var staffUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a staff member",
	Args:  cobra.ExactArgs(1),
	RunE:  runStaffUpdate,
}

var (
	staffUpdateNo   string
	staffUpdateName string
)

// staff delete
var staffDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more staff members",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStaffDelete,
}

// staff list
var staffListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List staff members, optionally filtered by staff no or name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStaffList,
}

var staffListJSON bool

// staff import
var staffImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import staff members from a CSV file",
	Long: `Import staff members from a CSV file.

The first row is treated as a header and skipped. Each following row
needs a staff no in the first column and a name in the second; rows
with missing cells are skipped. Use '-' to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runStaffImport,
}

func init() {
	rootCmd.AddCommand(staffCmd)
	staffCmd.AddCommand(staffAddCmd, staffUpdateCmd, staffDeleteCmd, staffListCmd, staffImportCmd)

	staffUpdateCmd.Flags().StringVar(&staffUpdateNo, "no", "", "Staff no")
	staffUpdateCmd.Flags().StringVar(&staffUpdateName, "name", "", "Staff name")
	staffListCmd.Flags().BoolVar(&staffListJSON, "json", false, "Output as JSON")
}

func runStaffAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	member, err := store.AddStaff(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println(member.ID)
	return nil
}

func runStaffUpdate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	update := roster.StaffUpdate{}
	if cmd.Flags().Changed("no") {
		update.No = &staffUpdateNo
	}
	if cmd.Flags().Changed("name") {
		update.Name = &staffUpdateName
	}

	return store.UpdateStaff(args[0], update)
}

func runStaffDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	for _, id := range args {
		removed, err := store.RemoveStaff(id)
		if err != nil {
			return err
		}
		if removed {
			fmt.Printf("Deleted %s\n", id)
		}
	}
	return nil
}

func runStaffList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	members := store.SearchStaff(query)

	if staffListJSON {
		return encodeJSONToStdout(members)
	}

	printStaffTable(members)
	return nil
}

func runStaffImport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	rows, err := readCSVRows(args[0])
	if err != nil {
		return err
	}

	created, err := store.ImportStaffRows(dataRows(rows))
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d staff members\n", created)
	return nil
}

// dataRows strips the header row from a parsed sheet.
func dataRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}

func readCSVRows(path string) ([][]string, error) {
	file := os.Stdin
	if path != "-" {
		opened, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open csv file: %w", err)
		}
		defer opened.Close()
		file = opened
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

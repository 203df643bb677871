package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show staff and task counts",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var statusJSON bool

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	counts := store.CountByStatus()

	if statusJSON {
		return encodeJSONToStdout(counts)
	}

	fmt.Printf("Staff:     %d\n", counts.Staff)
	fmt.Printf("Pending:   %d\n", counts.Pending)
	fmt.Printf("Completed: %d\n", counts.Completed)
	return nil
}

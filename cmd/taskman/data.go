package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export and import the full dataset",
}

// data export
var dataExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full dataset as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDataExport,
}

// data import
var dataImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the dataset from a JSON export",
	Long: `Replace the dataset from a JSON export.

The file must contain both a staff and a tasks collection. The current
dataset is replaced wholesale. Use '-' to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDataImport,
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataExportCmd, dataImportCmd)
}

func runDataExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	data, err := store.ExportDataset()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", args[0])
	return nil
}

func runDataImport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read import data: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
	}

	if err := store.ImportDataset(data); err != nil {
		return err
	}

	fmt.Println("Import complete")
	return nil
}

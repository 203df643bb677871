package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhaseem/taskman/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a task report",
	Long: `Generate a task report.

The report is printed to stdout. Use --save to also write it to a
dated file in the current directory. The heading and organization
lines come from the config file when set.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var (
	reportStaff string
	reportSave  bool
	reportDir   string
	reportJSON  bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportStaff, "staff", report.AllStaff, "Staff ID to report on, or 'all'")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "Write the report to a dated file")
	reportCmd.Flags().StringVar(&reportDir, "dir", ".", "Directory for the saved report file")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output report rows as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStoreWithConfig()
	if err != nil {
		return err
	}
	ds := store.Dataset()

	if reportJSON {
		return encodeJSONToStdout(report.Project(ds, reportStaff))
	}

	opts := report.Options{
		StaffID:  reportStaff,
		Heading:  cfg.Org.Name,
		OrgLines: cfg.Org.Lines,
		Now:      time.Now(),
	}

	if err := report.Generate(os.Stdout, report.TextWriter{}, ds, opts); err != nil {
		return err
	}

	if !reportSave {
		return nil
	}

	path := filepath.Join(reportDir, report.Filename(opts.Now))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if err := report.Generate(file, report.TextWriter{}, ds, opts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
	return nil
}

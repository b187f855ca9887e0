package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jrequejo/horex/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as a dated report file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, xlsx, pdf")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output path; defaults to the dated report name in the current directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	sess := mustSession(cmd)

	data, filename, err := sess.Export(exportFormat)
	if err != nil {
		if errors.Is(err, export.ErrNoEntries) {
			fmt.Fprintln(os.Stderr, "Nothing to export: the ledger is empty.")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	path := exportOutput
	if path == "" {
		path = filename
	} else if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		path = filepath.Join(path, filename)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing report: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Wrote %d entries to %s\n", len(sess.Entries()), path)
	return nil
}

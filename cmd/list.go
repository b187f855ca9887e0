package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jrequejo/horex/internal/model"
	"github.com/jrequejo/horex/internal/timecalc"
	"github.com/jrequejo/horex/internal/validate"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded overtime entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	sess := mustSession(cmd)

	printEntries(sess.Entries())
	return nil
}

// printEntries renders the ledger in insertion order.
func printEntries(entries []model.OvertimeEntry) {
	if len(entries) == 0 {
		fmt.Println("No overtime entries recorded yet.")
		return
	}

	for i, e := range entries {
		note := e.Note
		if note == "" {
			note = "-"
		}
		fmt.Printf("%3d. %s  %-40s  %-10s (%s)\n", i+1,
			intervalLabel(e), e.FullName, e.EmployeeID,
			timecalc.FormatDuration(validate.Duration(e)))
		fmt.Printf("     registered by %s  note: %s\n", e.RegisteredBy, note)
	}
}

// intervalLabel renders the entry/exit bounds, collapsing the exit date
// when the interval stays within one calendar day.
func intervalLabel(e model.OvertimeEntry) string {
	if e.ExitDate == "" || e.ExitDate == e.EntryDate {
		return fmt.Sprintf("%s %s–%s", e.EntryDate, e.EntryTime, e.ExitTime)
	}
	return fmt.Sprintf("%s %s – %s %s", e.EntryDate, e.EntryTime, e.ExitDate, e.ExitTime)
}

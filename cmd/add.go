package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrequejo/horex/internal/timecalc"
	"github.com/jrequejo/horex/internal/validate"
)

var (
	addCoordinator string
	addEmployeeID  string
	addEntryDate   string
	addEntryTime   string
	addExitDate    string
	addExitTime    string
	addNote        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new overtime entry",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addCoordinator, "coordinator", "", "Registering coordinator identity")
	addCmd.Flags().StringVar(&addEmployeeID, "id", "", "Employee identifier (DNI/CE)")
	addCmd.Flags().StringVar(&addEntryDate, "date", "", "Entry date (2006-01-02)")
	addCmd.Flags().StringVar(&addEntryTime, "in", "", "Entry time (15:04)")
	addCmd.Flags().StringVar(&addExitDate, "exit-date", "", "Exit date; defaults to the entry date")
	addCmd.Flags().StringVar(&addExitTime, "out", "", "Exit time (15:04)")
	addCmd.Flags().StringVar(&addNote, "note", "", "Optional note")
	_ = addCmd.MarkFlagRequired("coordinator")
	_ = addCmd.MarkFlagRequired("id")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("in")
	_ = addCmd.MarkFlagRequired("out")
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess := mustSession(cmd)

	entry, err := sess.Register(validate.Candidate{
		RegisteredBy: addCoordinator,
		EmployeeID:   addEmployeeID,
		EntryDate:    addEntryDate,
		EntryTime:    addEntryTime,
		ExitDate:     addExitDate,
		ExitTime:     addExitTime,
		Note:         addNote,
	})
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Rejected (%s): %s\n", verr.Code, verr.Message)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Recorded %s for %s (%s): %s\n",
		timecalc.FormatDuration(validate.Duration(entry)),
		entry.FullName, entry.EmployeeID, intervalLabel(entry))
	return nil
}

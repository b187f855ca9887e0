package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrequejo/horex/internal/model"
)

var (
	delCoordinator string
	delEmployeeID  string
	delFullName    string
	delCode        string
	delPosition    string
	delEntryDate   string
	delEntryTime   string
	delExitDate    string
	delExitTime    string
	delNote        string
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the first entry matching all given fields",
	Long: `delete removes the first ledger entry whose full field tuple equals the
given values. Entries carry no surrogate identifier; the composite key is
the record itself, so every stored field must be supplied exactly.`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&delCoordinator, "coordinator", "", "Registering coordinator identity")
	deleteCmd.Flags().StringVar(&delEmployeeID, "id", "", "Employee identifier (DNI/CE)")
	deleteCmd.Flags().StringVar(&delFullName, "name", "", "Employee full name as stored")
	deleteCmd.Flags().StringVar(&delCode, "code", "", "Employee payroll code as stored")
	deleteCmd.Flags().StringVar(&delPosition, "position", "", "Employee position as stored")
	deleteCmd.Flags().StringVar(&delEntryDate, "date", "", "Entry date (2006-01-02)")
	deleteCmd.Flags().StringVar(&delEntryTime, "in", "", "Entry time (15:04)")
	deleteCmd.Flags().StringVar(&delExitDate, "exit-date", "", "Exit date as stored")
	deleteCmd.Flags().StringVar(&delExitTime, "out", "", "Exit time (15:04)")
	deleteCmd.Flags().StringVar(&delNote, "note", "", "Note as stored")
	_ = deleteCmd.MarkFlagRequired("id")
	_ = deleteCmd.MarkFlagRequired("date")
	_ = deleteCmd.MarkFlagRequired("in")
	_ = deleteCmd.MarkFlagRequired("out")
}

func runDelete(cmd *cobra.Command, args []string) error {
	sess := mustSession(cmd)

	found, err := sess.Delete(model.OvertimeEntry{
		RegisteredBy: delCoordinator,
		EmployeeID:   delEmployeeID,
		FullName:     delFullName,
		Code:         delCode,
		Position:     delPosition,
		EntryDate:    delEntryDate,
		EntryTime:    delEntryTime,
		ExitDate:     delExitDate,
		ExitTime:     delExitTime,
		Note:         delNote,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !found {
		fmt.Fprintln(os.Stderr, "No matching entry found.")
		os.Exit(1)
	}

	fmt.Println("Entry deleted.")
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	employeesCoordinator string
	employeesSearch      string
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List the employees a coordinator may register entries for",
	Args:  cobra.NoArgs,
	RunE:  runEmployees,
}

func init() {
	employeesCmd.Flags().StringVar(&employeesCoordinator, "coordinator", "", "Registering coordinator identity")
	employeesCmd.Flags().StringVar(&employeesSearch, "search", "", "Case-insensitive substring match on the full name")
	_ = employeesCmd.MarkFlagRequired("coordinator")
}

func runEmployees(cmd *cobra.Command, args []string) error {
	sess := mustSession(cmd)

	candidates := sess.Candidates(employeesCoordinator, employeesSearch)
	if len(candidates) == 0 {
		fmt.Println("No selectable employees.")
		return nil
	}
	for _, rec := range candidates {
		fmt.Printf("%-12s  %-40s  %-10s  %s\n", rec.Identifier, rec.FullName, rec.Code, rec.Position)
	}
	return nil
}

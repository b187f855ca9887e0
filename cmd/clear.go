package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL recorded overtime entries",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm wiping the ledger")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		fmt.Fprintln(os.Stderr, "This removes every recorded entry and cannot be undone.")
		fmt.Fprintln(os.Stderr, "Re-run with --yes to confirm.")
		os.Exit(1)
	}

	sess := mustSession(cmd)

	n := len(sess.Entries())
	if err := sess.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Cleared %d entries.\n", n)
	return nil
}

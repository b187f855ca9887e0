package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coordinatorsCmd = &cobra.Command{
	Use:   "coordinators",
	Short: "List the registering coordinator choice set",
	Args:  cobra.NoArgs,
	RunE:  runCoordinators,
}

func runCoordinators(cmd *cobra.Command, args []string) error {
	sess := mustSession(cmd)

	authorities := sess.Authorities()
	if len(authorities) == 0 {
		fmt.Println("No coordinators available.")
		return nil
	}
	for _, a := range authorities {
		fmt.Println(a)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrequejo/horex/internal/app"
	"github.com/jrequejo/horex/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "horex",
	Short: "horex – a local overtime-entry ledger",
	Long: `horex records overtime entries for employees against a master roster,
keeps them in a locally persisted ledger and exports them as CSV, XLSX
or PDF reports. The roster is loaded once at startup from the configured
source; entries are scoped by the registering coordinator's authority.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(coordinatorsCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// newSession loads the config and initializes the application session.
// A roster load failure degrades to an empty roster with a warning; a
// ledger open failure is fatal.
func newSession(ctx context.Context, hooks app.Hooks) (*app.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	sess := app.New(cfg, hooks)
	if err := sess.Init(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

// mustSession is the command bootstrap: any setup failure exits 2.
func mustSession(cmd *cobra.Command) *app.Session {
	sess, err := newSession(cmd.Context(), app.Hooks{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return sess
}

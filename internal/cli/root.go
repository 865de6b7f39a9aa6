package cli

import (
	"github.com/ivanc/salesdesk/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "A terminal tool for managing clients, products, and sales",
	Long: `Salesdesk manages clients, products, and the sales linking them.
All data lives in memory for the lifetime of the process.

By default, running salesdesk without arguments launches the interactive TUI.
Use subcommands for one-shot CLI operations.`,
	RunE: launchTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(salesCmd)
	rootCmd.AddCommand(tuiCmd)
}

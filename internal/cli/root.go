package cli

import (
	"github.com/andy/worklog/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "A CLI work-hour logger for teams",
	Long: `Worklog tracks work hours against clients, projects, and jobs, and
summarizes them into daily, weekly, and monthly dashboards.

By default, running worklog without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
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
	// Add all subcommands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
